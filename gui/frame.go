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

package gui

// Colour is an RGB colour.
type Colour struct {
	R, G, B uint8
}

// List of colours used by the game.
var (
	Background   = Colour{0, 0, 0}
	GridLine     = Colour{40, 40, 40}
	SegmentOuter = Colour{155, 0, 0}
	SegmentInner = Colour{255, 0, 0}
	Text         = Colour{255, 255, 255}
	Prompt       = Colour{40, 40, 40}

	// used by a GUI that can't draw the apple sprite
	Apple = Colour{255, 128, 0}
)

// Rect is a rectangle in pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Anchor says which point of a piece of text is placed at the coordinates.
type Anchor int

// List of valid Anchor values.
const (
	TopLeft Anchor = iota
	MidTop
)

// Op is a single drawing operation. Handle Op values with a type switch.
type Op interface{}

// OpFill fills the entire frame.
type OpFill struct {
	Colour Colour
}

// OpLine draws a one pixel line.
type OpLine struct {
	X1, Y1 int
	X2, Y2 int
	Colour Colour
}

// OpRect draws a filled rectangle.
type OpRect struct {
	Rect   Rect
	Colour Colour
}

// OpSprite draws the apple sprite scaled to the rectangle.
type OpSprite struct {
	Rect Rect
}

// OpText draws a line of text. Size is the font size in points.
type OpText struct {
	Text   string
	X, Y   int
	Anchor Anchor
	Size   int
	Colour Colour
}

// Frame is a complete picture of the game. Operations are performed in order.
// Width, Height and CellSize are in pixels.
type Frame struct {
	Width    int
	Height   int
	CellSize int
	Ops      []Op
}

func (f *Frame) add(op Op) {
	f.Ops = append(f.Ops, op)
}

// Copy returns a Frame that can be added to without affecting the original.
func (f Frame) Copy() Frame {
	c := f
	c.Ops = make([]Op, len(f.Ops))
	copy(c.Ops, f.Ops)
	return c
}
