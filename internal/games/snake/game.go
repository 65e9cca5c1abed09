// Package snake implements the snake game core: a snake that grows by
// eating fruit on a fixed square grid, driven by discrete commands and a
// fixed-interval tick. It carries no rendering, timing or I/O.
package snake

import (
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the state of the game state machine.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
	PhaseWin      Phase = "win"
)

// Game coordinates the snake, the fruit, the score and phase transitions.
// It is not safe for concurrent use; a single control loop owns it.
type Game struct {
	gridSize int
	cells    int // Snake length that fills the board
	rng      *rand.Rand

	phase Phase
	score int
	tick  uint64 // Ticks processed while playing
	quit  bool

	snake *Snake
	fruit *Fruit
}

// New creates a game in the start phase from a validated configuration.
// The snake and fruit are placed immediately; cfg.Seed seeds fruit placement.
func New(cfg config.SnakeConfig) *Game {
	n := cfg.GridSize
	rng := rand.New(rand.NewSource(uint64(cfg.Seed)))
	start := core.Vec{X: max(n/4, cfg.InitialBodyLength-1), Y: n / 2}

	g := &Game{
		gridSize: n,
		cells:    cfg.Cells(),
		rng:      rng,
		phase:    PhaseStart,
		snake:    NewSnake(start, cfg.InitialBodyLength),
		fruit:    NewFruit(n, cfg.MaxFruitRejections, rng),
	}
	g.fruit.Randomize(g.snake.Occupied())
	return g
}

// Apply routes a presentation command to the matching operation.
func (g *Game) Apply(action core.Action) {
	switch action {
	case core.ActionRestart:
		g.Restart()
	case core.ActionQuit:
		g.Quit()
	default:
		if d, ok := action.Direction(); ok {
			g.HandleDirection(d)
		}
	}
}

// HandleDirection handles a directional command. In the start phase it
// begins play and the same command is then offered to the snake as a turn.
// It is ignored after the game has ended. Returns whether the turn was taken.
func (g *Game) HandleDirection(d core.Vec) bool {
	switch g.phase {
	case PhaseStart:
		g.phase = PhasePlaying
		return g.snake.SetDirection(d)
	case PhasePlaying:
		return g.snake.SetDirection(d)
	default:
		return false
	}
}

// Restart resets the snake, fruit and score and resumes play.
// Only valid after game over or a win; ignored otherwise.
func (g *Game) Restart() {
	if g.phase != PhaseGameOver && g.phase != PhaseWin {
		return
	}
	g.snake.Reset()
	g.score = 0
	g.tick = 0
	g.fruit.Randomize(g.snake.Occupied())
	g.phase = PhasePlaying
}

// Quit asks the shell to terminate. Accepted in any phase.
func (g *Game) Quit() {
	g.quit = true
}

// ShouldQuit reports whether a quit command was received.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Tick advances the game by one step. No-op unless playing.
func (g *Game) Tick() {
	if g.phase != PhasePlaying {
		return
	}
	g.tick++

	g.snake.Advance()
	g.checkFruit()
	if g.phase == PhaseWin {
		return
	}
	g.checkFail()
}

// checkFruit handles eating: growth, score, and either the win or a new fruit.
func (g *Game) checkFruit() {
	if g.snake.Head() != g.fruit.Pos() {
		return
	}
	g.snake.MarkGrowth()
	g.score++

	// Board full: nowhere left for fruit
	if g.snake.Length() == g.cells {
		g.phase = PhaseWin
		return
	}
	g.fruit.Randomize(g.snake.Occupied())
}

// checkFail ends the game when the head leaves the grid or hits the body.
func (g *Game) checkFail() {
	if !g.snake.Head().InGrid(g.gridSize) || g.snake.HitsSelf() {
		g.phase = PhaseGameOver
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of fruit eaten since the last (re)start.
func (g *Game) Score() int {
	return g.score
}

// GridSize returns the number of cells per side.
func (g *Game) GridSize() int {
	return g.gridSize
}
