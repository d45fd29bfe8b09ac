package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	Mode         Mode
	Difficulty   config.Difficulty
	Segments     []Coord // Head first
	Direction    Direction
	Food         Coord
	Score        int
	Length       int
	Tick         uint64
	SpeedCounter int
	TicksPerMove int
	GridW        int
	GridH        int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:         s.mode,
		Difficulty:   s.difficulty,
		Segments:     s.snake.Positions(),
		Direction:    s.snake.Direction(),
		Food:         s.food.Position(),
		Score:        s.score,
		Length:       s.snake.Len(),
		Tick:         s.tick,
		SpeedCounter: s.speedCounter,
		TicksPerMove: s.TicksPerMove(),
		GridW:        s.grid.W,
		GridH:        s.grid.H,
	}
}

// Head returns the head cell.
func (sn Snapshot) Head() Coord {
	if len(sn.Segments) == 0 {
		return Coord{}
	}
	return sn.Segments[0]
}
