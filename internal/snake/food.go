package snake

import (
	"errors"
	"math/rand"
)

// ErrGridFull is returned when there is no free cell left for food.
var ErrGridFull = errors.New("snake: no free cell for food")

// Food is the single item on the board.
type Food struct {
	grid     Grid
	rng      *rand.Rand
	position Coord
}

// NewFood places food on a random cell of an empty board.
func NewFood(grid Grid, rng *rand.Rand) *Food {
	f := &Food{grid: grid, rng: rng}
	//nolint:errcheck // An empty board always has a free cell
	f.Relocate(nil)
	return f
}

// Relocate moves the food to a random cell not in occupied.
// Cells are sampled uniformly until a free one turns up. If occupied covers
// the whole board the food stays put and ErrGridFull is returned.
func (f *Food) Relocate(occupied []Coord) error {
	taken := make(map[Coord]struct{}, len(occupied))
	for _, c := range occupied {
		if f.grid.Contains(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= f.grid.Cells() {
		return ErrGridFull
	}

	for {
		c := f.grid.Random(f.rng)
		if _, ok := taken[c]; !ok {
			f.position = c
			return nil
		}
	}
}

// Position returns the food cell.
func (f *Food) Position() Coord {
	return f.position
}
