// Package snake implements the single-player toroidal Snake simulation:
// the snake itself, food placement and the menu/playing/game-over session
// that advances one discrete step per tick.
//
// The package is pure game logic. It never reads keys or writes to a
// terminal; callers feed it core.Action intents and read back a Snapshot.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Coord is a cell on the board. Two coords are the same cell iff they are equal.
type Coord struct {
	X, Y int
}

// Add returns c shifted by d without wrapping.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid is a fixed-size toroidal board: leaving one edge re-enters at the opposite one.
type Grid struct {
	W, H int
}

// NewGrid creates a w*h board.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Wrap folds any coordinate back onto the board.
func (g Grid) Wrap(c Coord) Coord {
	return Coord{X: core.Wrap(c.X, g.W), Y: core.Wrap(c.Y, g.H)}
}

// Step moves one cell from c in direction d, wrapping at the edges.
func (g Grid) Step(c Coord, d Direction) Coord {
	return g.Wrap(c.Add(d.Delta()))
}

// Contains reports whether c lies on the board without wrapping.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Center returns the spawn cell.
func (g Grid) Center() Coord {
	return Coord{X: g.W / 2, Y: g.H / 2}
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.W * g.H
}

// Random returns a uniformly distributed cell.
func (g Grid) Random(rng *rand.Rand) Coord {
	return Coord{X: rng.Intn(g.W), Y: rng.Intn(g.H)}
}
