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

// Package sdlplay is an implementation of the gui.GUI interface using SDL.
// Frames are drawn with the SDL renderer, text with SDL_ttf and the apple
// sprite is loaded with SDL_image.
//
// All functions must be called from the main thread.
package sdlplay

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/jetsetilly/wormy/config"
	"github.com/jetsetilly/wormy/gui"
	"github.com/jetsetilly/wormy/logger"
	"github.com/jetsetilly/wormy/userinput"
)

// WindowTitle is the caption of the SDL window.
const WindowTitle = "Snake- Qwiic Joystick"

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// fonts are opened when first needed. a nil entry means the font failed
	// to open and text of that size is not drawn
	fontPath string
	fonts    map[int]*ttf.Font

	// nil if the sprite could not be loaded
	sprite *sdl.Texture
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
func NewSdlPlay(d config.Display, assets config.Assets) (*SdlPlay, error) {
	scr := &SdlPlay{
		fontPath: assets.Font,
		fonts:    make(map[int]*ttf.Font),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	err = ttf.Init()
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.window, err = sdl.CreateWindow(WindowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(d.WindowWidth()), int32(d.WindowHeight()),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the game can be played without the sprite
	err = img.Init(img.INIT_PNG)
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "image support: %v", err)
	} else {
		scr.sprite, err = img.LoadTexture(scr.renderer, assets.Sprite)
		if err != nil {
			logger.Logf(logger.Allow, "sdlplay", "apple sprite: %v", err)
			scr.sprite = nil
		}
	}

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy(output io.Writer) {
	for _, f := range scr.fonts {
		if f != nil {
			f.Close()
		}
	}
	scr.fonts = nil

	if scr.sprite != nil {
		if err := scr.sprite.Destroy(); err != nil && output != nil {
			fmt.Fprintln(output, err)
		}
	}

	if err := scr.renderer.Destroy(); err != nil && output != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil && output != nil {
		fmt.Fprintln(output, err)
	}

	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// Events implements the gui.GUI interface.
func (scr *SdlPlay) Events() []userinput.Event {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue // for loop
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				events = append(events, userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  keyMod(),
					Down: true,
				})
			case sdl.KEYUP:
				events = append(events, userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  keyMod(),
					Down: false,
				})
			}
		}
	}

	return events
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}
