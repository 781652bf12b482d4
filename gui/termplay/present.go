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

package termplay

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/wormy/gui"
)

func colour(c gui.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// scaling of frame pixels to terminal cells
type scale struct {
	cols, rows    int
	width, height int
}

func (s scale) col(x int) int {
	return x * s.cols / s.width
}

func (s scale) row(y int) int {
	return y * s.rows / s.height
}

// Present implements the gui.GUI interface.
func (trm *TermPlay) Present(f gui.Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("termplay: frame has no size")
	}

	cols, rows := trm.screen.Size()
	s := scale{cols: cols, rows: rows, width: f.Width, height: f.Height}

	// background colour of every terminal cell. text is drawn over the top
	bg := tcell.StyleDefault

	for _, op := range f.Ops {
		switch op := op.(type) {
		case gui.OpFill:
			bg = tcell.StyleDefault.Background(colour(op.Colour))
			trm.fill(0, 0, cols, rows, bg)

		case gui.OpLine:
			// the terminal cells are the grid

		case gui.OpRect:
			trm.rect(s, op.Rect, tcell.StyleDefault.Background(colour(op.Colour)))

		case gui.OpSprite:
			trm.rect(s, op.Rect, tcell.StyleDefault.Background(colour(gui.Apple)))

		case gui.OpText:
			trm.text(s, op)

		default:
			return fmt.Errorf("termplay: unsupported draw operation (%T)", op)
		}
	}

	trm.screen.Show()

	return nil
}

func (trm *TermPlay) fill(x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			trm.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (trm *TermPlay) rect(s scale, r gui.Rect, style tcell.Style) {
	x0, y0 := s.col(r.X), s.row(r.Y)
	x1, y1 := s.col(r.X+r.W), s.row(r.Y+r.H)

	// small rectangles are always at least one terminal cell
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	trm.fill(x0, y0, x1, y1, style)
}

func (trm *TermPlay) text(s scale, op gui.OpText) {
	x, y := s.col(op.X), s.row(op.Y)
	if op.Anchor == gui.MidTop {
		x -= len(op.Text) / 2
	}

	// text that would run off the right edge is moved left
	cols, _ := trm.screen.Size()
	if x+len(op.Text) > cols {
		x = cols - len(op.Text)
	}
	if x < 0 {
		x = 0
	}

	for i, r := range op.Text {
		_, _, st, _ := trm.screen.GetContent(x+i, y)
		_, bg, _ := st.Decompose()
		trm.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault.Foreground(colour(op.Colour)).Background(bg))
	}
}
