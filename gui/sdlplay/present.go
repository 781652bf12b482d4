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

package sdlplay

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/jetsetilly/wormy/gui"
	"github.com/jetsetilly/wormy/logger"
)

// Present implements the gui.GUI interface.
func (scr *SdlPlay) Present(f gui.Frame) error {
	for _, op := range f.Ops {
		var err error

		switch op := op.(type) {
		case gui.OpFill:
			err = scr.setColour(op.Colour)
			if err == nil {
				err = scr.renderer.Clear()
			}

		case gui.OpLine:
			err = scr.setColour(op.Colour)
			if err == nil {
				err = scr.renderer.DrawLine(int32(op.X1), int32(op.Y1), int32(op.X2), int32(op.Y2))
			}

		case gui.OpRect:
			err = scr.setColour(op.Colour)
			if err == nil {
				err = scr.renderer.FillRect(rect(op.Rect))
			}

		case gui.OpSprite:
			if scr.sprite != nil {
				err = scr.renderer.Copy(scr.sprite, nil, rect(op.Rect))
			} else {
				err = scr.setColour(gui.Apple)
				if err == nil {
					err = scr.renderer.FillRect(rect(op.Rect))
				}
			}

		case gui.OpText:
			err = scr.text(op)

		default:
			err = fmt.Errorf("unsupported draw operation (%T)", op)
		}

		if err != nil {
			return fmt.Errorf("sdlplay: %w", err)
		}
	}

	scr.renderer.Present()

	return nil
}

func rect(r gui.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

func (scr *SdlPlay) setColour(c gui.Colour) error {
	return scr.renderer.SetDrawColor(c.R, c.G, c.B, 255)
}

func (scr *SdlPlay) font(size int) *ttf.Font {
	if f, ok := scr.fonts[size]; ok {
		return f
	}

	f, err := ttf.OpenFont(scr.fontPath, size)
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "font: %v", err)
		f = nil
	}
	scr.fonts[size] = f

	return f
}

func (scr *SdlPlay) text(op gui.OpText) error {
	f := scr.font(op.Size)
	if f == nil {
		return nil
	}

	surface, err := f.RenderUTF8Blended(op.Text, sdl.Color{R: op.Colour.R, G: op.Colour.G, B: op.Colour.B, A: 255})
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := scr.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	dst := &sdl.Rect{X: int32(op.X), Y: int32(op.Y), W: surface.W, H: surface.H}
	if op.Anchor == gui.MidTop {
		dst.X -= surface.W / 2
	}

	return scr.renderer.Copy(texture, nil, dst)
}
