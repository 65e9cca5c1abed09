package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the game state for renderers, logging,
// and determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	GridSize  int
	Snake     []core.Vec // Head first
	Length    int        // Committed length, including pending growth
	Direction core.Vec
	Fruit     core.Vec
	HasFruit  bool // False when the fruit should not be shown
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		GridSize:  g.gridSize,
		Snake:     g.snake.Cells(),
		Length:    g.snake.Length(),
		Direction: g.snake.Direction(),
		Fruit:     g.fruit.Pos(),
		HasFruit:  g.phase == PhasePlaying || g.phase == PhaseGameOver,
	}
}

// Head returns the head cell of the snapshot.
func (s Snapshot) Head() core.Vec {
	return s.Snake[0]
}
