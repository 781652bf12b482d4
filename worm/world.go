// This file is part of Wormy.
//
// Wormy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wormy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wormy.  If not, see <https://www.gnu.org/licenses/>.

package worm

import "fmt"

// InitialLength of the worm at the start of every game. The score is the
// number of cells the worm has grown beyond this.
const InitialLength = 3

// the start position is kept this many cells away from the edge of the grid.
const startMargin = 5

// Result of a single call to World.Tick().
type Result int

// List of valid Result values.
const (
	Continue Result = iota
	GameOver
)

func (r Result) String() string {
	if r == GameOver {
		return "game over"
	}
	return "continue"
}

// Random is the source of randomness for the world. Used for the start
// position and for apple placement.
type Random interface {
	Intn(n int) int
}

// Snapshot is a copy of the world state suitable for rendering. Changing the
// snapshot has no effect on the World it was taken from.
type Snapshot struct {
	Body      []Cell
	Apple     Cell
	Direction Direction
	Score     int
}

// World is the authoritative state of the game: the worm, the apple and the
// direction of travel.
type World struct {
	// dimensions of the grid in cells
	Width  int
	Height int

	// the head of the worm is always at index zero
	body []Cell

	apple     Cell
	direction Direction

	rnd Random
}

// NewWorld is the preferred method of initialisation for the World type. The
// world is Reset() before being returned.
func NewWorld(width, height int, rnd Random) (*World, error) {
	if width <= startMargin*2 || height <= startMargin*2 {
		return nil, fmt.Errorf("worm: grid of %dx%d is too small", width, height)
	}

	w := &World{
		Width:  width,
		Height: height,
		rnd:    rnd,
	}
	w.Reset()

	return w, nil
}

// Reset the world for a new game. The worm is placed at a random position
// away from the edges, three cells long and heading right. The apple is
// placed at random.
func (w *World) Reset() {
	head := Cell{
		Col: startMargin + w.rnd.Intn(w.Width-startMargin*2),
		Row: startMargin + w.rnd.Intn(w.Height-startMargin*2),
	}

	w.body = w.body[:0]
	for i := 0; i < InitialLength; i++ {
		w.body = append(w.body, Cell{Col: head.Col - i, Row: head.Row})
	}

	w.direction = Right
	w.apple = w.randomCell()
}

// Arrange the world with a specific worm, apple and direction. The body is
// copied and must be at least InitialLength cells long.
func (w *World) Arrange(body []Cell, apple Cell, direction Direction) error {
	if len(body) < InitialLength {
		return fmt.Errorf("worm: body of %d cells is too short", len(body))
	}
	w.body = append(w.body[:0], body...)
	w.apple = apple
	w.direction = direction
	return nil
}

// apples can land anywhere on the grid. including underneath the worm
func (w *World) randomCell() Cell {
	return Cell{
		Col: w.rnd.Intn(w.Width),
		Row: w.rnd.Intn(w.Height),
	}
}

// Direction returns the committed direction of travel.
func (w *World) Direction() Direction {
	return w.direction
}

// Head returns the cell occupied by the head of the worm.
func (w *World) Head() Cell {
	return w.body[0]
}

// Score is the number of cells grown since the start of the game.
func (w *World) Score() int {
	return len(w.body) - InitialLength
}

// Snapshot returns a copy of the world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Body:      make([]Cell, len(w.body)),
		Apple:     w.apple,
		Direction: w.direction,
		Score:     w.Score(),
	}
	copy(s.Body, w.body)
	return s
}

// collision is checked against the head as it was left by the previous tick.
// a worm that has just left the grid is therefore caught on the following
// tick
func (w *World) collision() bool {
	head := w.body[0]

	if head.Col == -1 || head.Col == w.Width || head.Row == -1 || head.Row == w.Height {
		return true
	}

	for _, c := range w.body[1:] {
		if c == head {
			return true
		}
	}

	return false
}

// Tick advances the world by one step. If changed is true then direction
// is adopted before anything else happens, otherwise the committed direction
// is kept.
//
// Returns GameOver if the worm has hit the edge of the grid or itself. The
// world is not altered in that case.
func (w *World) Tick(direction Direction, changed bool) Result {
	if changed {
		w.direction = direction
	}

	if w.collision() {
		return GameOver
	}

	if w.body[0] == w.apple {
		// tail is kept so the worm grows by one cell
		w.apple = w.randomCell()
	} else {
		w.body = w.body[:len(w.body)-1]
	}

	w.body = append(w.body, Cell{})
	copy(w.body[1:], w.body)
	w.body[0] = w.body[1].Step(w.direction)

	return Continue
}
