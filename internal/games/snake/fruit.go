package snake

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Fruit is the single piece of food on the board.
type Fruit struct {
	pos           core.Vec
	gridSize      int
	maxRejections int
	rng           *rand.Rand
}

// NewFruit creates an unplaced fruit for an n x n grid.
func NewFruit(n, maxRejections int, rng *rand.Rand) *Fruit {
	return &Fruit{
		gridSize:      n,
		maxRejections: maxRejections,
		rng:           rng,
	}
}

// Pos returns the fruit cell.
func (f *Fruit) Pos() core.Vec {
	return f.pos
}

// Randomize moves the fruit to a uniformly random cell not in forbidden.
// Random draws are tried first; once the rejection budget is spent the
// free cells are enumerated and one is picked. Panics if no free cell
// exists: callers must detect a full board before asking for fruit.
func (f *Fruit) Randomize(forbidden map[core.Vec]struct{}) {
	for range f.maxRejections {
		p := core.Vec{X: f.rng.Intn(f.gridSize), Y: f.rng.Intn(f.gridSize)}
		if _, taken := forbidden[p]; !taken {
			f.pos = p
			return
		}
	}

	free := make([]core.Vec, 0, f.gridSize*f.gridSize)
	for y := range f.gridSize {
		for x := range f.gridSize {
			p := core.Vec{X: x, Y: y}
			if _, taken := forbidden[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		panic(fmt.Sprintf("snake: fruit placement on a full %dx%d board", f.gridSize, f.gridSize))
	}
	f.pos = free[f.rng.Intn(len(free))]
}
