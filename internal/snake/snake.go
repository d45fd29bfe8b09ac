package snake

// initialLength is the committed length of a freshly spawned snake. It starts
// as a single cell and unfolds over the first moves via pending growth.
const initialLength = 3

// Snake is an ordered run of cells, head first.
type Snake struct {
	grid          Grid
	positions     []Coord // Head at index 0
	length        int     // Committed segment count
	pendingGrowth int     // Segments still to add before the tail moves again
	direction     Direction
	nextDir       Direction // Buffered until CommitDirection
}

// NewSnake creates a snake centred on grid.
func NewSnake(grid Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// Reset respawns the snake as one cell in the centre heading right.
// The body grows to its full initial length over the next two moves.
func (s *Snake) Reset() {
	s.length = initialLength
	s.positions = []Coord{s.grid.Center()}
	s.direction = DirRight
	s.nextDir = DirRight
	s.pendingGrowth = initialLength - 1
}

// ChangeDirection buffers d for the next tick.
// Reversing straight into the neck is refused; the check is against the
// committed direction, so two quick turns within one tick cannot sneak past it.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.nextDir = d
}

// CommitDirection makes the buffered direction current. Call once per tick, before Move.
func (s *Snake) CommitDirection() {
	s.direction = s.nextDir
}

// Move advances the head one cell. It returns false, leaving the snake
// untouched, if the new head would land on any current segment. The tail cell
// counts even though it would be vacated by this move.
func (s *Snake) Move() bool {
	newHead := s.grid.Step(s.positions[0], s.direction)
	if s.Occupies(newHead) {
		return false
	}

	s.positions = append(s.positions, Coord{})
	copy(s.positions[1:], s.positions)
	s.positions[0] = newHead

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.positions = s.positions[:len(s.positions)-1]
	}
	return true
}

// Grow schedules one extra segment. Called once per food eaten.
func (s *Snake) Grow() {
	s.pendingGrowth++
	s.length++
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Coord) bool {
	for _, p := range s.positions {
		if p == c {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() Coord {
	return s.positions[0]
}

// Positions returns a copy of the segments, head first.
func (s *Snake) Positions() []Coord {
	out := make([]Coord, len(s.positions))
	copy(out, s.positions)
	return out
}

// Len returns the committed length, which may run ahead of the visible body
// while growth is pending.
func (s *Snake) Len() int {
	return s.length
}

// Direction returns the committed direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// NextDirection returns the buffered direction.
func (s *Snake) NextDirection() Direction {
	return s.nextDir
}

// PendingGrowth returns how many segments are still to be added.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}
