package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the ordered body of the snake, head at index 0.
type Snake struct {
	body      []core.Vec
	direction core.Vec

	// Set when fruit is eaten; the next advance keeps the tail.
	pendingGrowth bool
	// Set once a direction change is accepted; cleared by advance.
	// At most one turn can take effect per tick.
	moveLocked bool

	start  core.Vec // Initial head position
	length int      // Initial body length
}

// NewSnake creates a horizontal snake of the given length with its head at
// start, pointing right.
func NewSnake(start core.Vec, length int) *Snake {
	s := &Snake{
		start:  start,
		length: max(length, 1),
	}
	s.Reset()
	return s
}

// Reset restores the initial body, rightward direction and clears both flags.
func (s *Snake) Reset() {
	s.body = make([]core.Vec, s.length)
	for i := range s.body {
		s.body[i] = core.Vec{X: s.start.X - i, Y: s.start.Y}
	}
	s.direction = core.Right
	s.pendingGrowth = false
	s.moveLocked = false
}

// SetDirection requests a turn. It is accepted only when no turn has been
// accepted since the last advance and d is not the reverse of the current
// heading. Returns whether the turn was accepted.
func (s *Snake) SetDirection(d core.Vec) bool {
	if s.moveLocked || !d.IsUnit() || d == s.direction.Neg() {
		return false
	}
	s.direction = d
	s.moveLocked = true
	return true
}

// Advance moves the head one cell along the current direction. The tail is
// dropped unless growth is pending. Collisions are not checked here.
func (s *Snake) Advance() {
	newHead := s.body[0].Add(s.direction)
	if s.pendingGrowth {
		s.body = slices.Insert(s.body, 0, newHead)
		s.pendingGrowth = false
	} else {
		copy(s.body[1:], s.body[:len(s.body)-1])
		s.body[0] = newHead
	}
	s.moveLocked = false
}

// MarkGrowth schedules one cell of growth for the next advance.
func (s *Snake) MarkGrowth() {
	s.pendingGrowth = true
}

// Head returns the head cell.
func (s *Snake) Head() core.Vec {
	return s.body[0]
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Vec {
	return s.direction
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []core.Vec {
	return slices.Clone(s.body)
}

// Length returns the committed length: the body plus any pending growth.
func (s *Snake) Length() int {
	if s.pendingGrowth {
		return len(s.body) + 1
	}
	return len(s.body)
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[core.Vec]struct{} {
	set := make(map[core.Vec]struct{}, len(s.body))
	for _, c := range s.body {
		set[c] = struct{}{}
	}
	return set
}

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf() bool {
	return slices.Contains(s.body[1:], s.body[0])
}

// Locked reports whether a turn has already been accepted this tick.
func (s *Snake) Locked() bool {
	return s.moveLocked
}
