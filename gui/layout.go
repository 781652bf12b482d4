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

import (
	"fmt"

	"github.com/jetsetilly/wormy/config"
	"github.com/jetsetilly/wormy/worm"
)

// PromptText is shown on the start and game over screens.
const PromptText = "Press a key to play."

// size of the small font in points. the large font is scaled by the multiplier
const basicFontSize = 18

// the inner rectangle of a worm segment is inset by this many pixels
const segmentInset = 4

// Layout builds the frames for each screen of the game.
type Layout struct {
	width      int
	height     int
	cellSize   int
	multiplier int
}

// NewLayout is the preferred method of initialisation for the Layout type.
func NewLayout(d config.Display) Layout {
	return Layout{
		width:      d.WindowWidth(),
		height:     d.WindowHeight(),
		cellSize:   d.CellPixels(),
		multiplier: d.Multiplier,
	}
}

func (l Layout) frame() Frame {
	return Frame{
		Width:    l.width,
		Height:   l.height,
		CellSize: l.cellSize,
	}
}

func (l Layout) prompt(f *Frame) {
	f.add(OpText{
		Text:   PromptText,
		X:      l.width - 20*l.multiplier,
		Y:      l.height - 3*l.multiplier,
		Anchor: TopLeft,
		Size:   basicFontSize,
		Colour: Prompt,
	})
}

// StartScreen returns the frame shown before the first game.
func (l Layout) StartScreen() Frame {
	f := l.frame()
	f.add(OpFill{Colour: Background})
	l.prompt(&f)
	return f
}

// Playing returns the frame for a single tick of the game.
func (l Layout) Playing(s worm.Snapshot) Frame {
	f := l.frame()
	f.add(OpFill{Colour: Background})

	for x := 0; x < l.width; x += l.cellSize {
		f.add(OpLine{X1: x, Y1: 0, X2: x, Y2: l.height, Colour: GridLine})
	}
	for y := 0; y < l.height; y += l.cellSize {
		f.add(OpLine{X1: 0, Y1: y, X2: l.width, Y2: y, Colour: GridLine})
	}

	for _, c := range s.Body {
		x := c.Col * l.cellSize
		y := c.Row * l.cellSize
		f.add(OpRect{
			Rect:   Rect{X: x, Y: y, W: l.cellSize, H: l.cellSize},
			Colour: SegmentOuter,
		})
		f.add(OpRect{
			Rect: Rect{
				X: x + segmentInset,
				Y: y + segmentInset,
				W: l.cellSize - 2*segmentInset,
				H: l.cellSize - 2*segmentInset,
			},
			Colour: SegmentInner,
		})
	}

	f.add(OpSprite{Rect: Rect{
		X: s.Apple.Col * l.cellSize,
		Y: s.Apple.Row * l.cellSize,
		W: l.cellSize,
		H: l.cellSize,
	}})

	f.add(OpText{
		Text:   fmt.Sprintf("Score: %d", s.Score),
		X:      l.width - 12*l.multiplier,
		Y:      l.multiplier,
		Anchor: TopLeft,
		Size:   basicFontSize,
		Colour: Text,
	})

	return f
}

// GameOver returns the frame shown at the end of a game. The "Game Over"
// text is drawn over the final frame of the game.
func (l Layout) GameOver(last Frame) Frame {
	f := last.Copy()
	if len(f.Ops) == 0 {
		f = l.frame()
		f.add(OpFill{Colour: Background})
	}

	size := 15 * l.multiplier

	f.add(OpText{
		Text:   "Game",
		X:      l.width / 2,
		Y:      10,
		Anchor: MidTop,
		Size:   size,
		Colour: Text,
	})

	// the rendered height of the text is taken to be the point size
	f.add(OpText{
		Text:   "Over",
		X:      l.width / 2,
		Y:      10 + size + 25,
		Anchor: MidTop,
		Size:   size,
		Colour: Text,
	})

	l.prompt(&f)

	return f
}
