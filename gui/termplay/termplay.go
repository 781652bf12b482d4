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

// Package termplay is an implementation of the gui.GUI interface that draws
// to a terminal with tcell. Useful when the joystick is attached to a
// machine with no display.
//
// The frame is scaled to fit the terminal. Grid lines are not drawn and text
// is drawn at a single size.
package termplay

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/wormy/userinput"
)

// maximum number of events held between calls to Events()
const eventQueueLen = 100

// TermPlay is a tcell implementation of the gui.GUI interface.
type TermPlay struct {
	screen tcell.Screen
	events chan tcell.Event
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The screen will be initialised by the function.
func NewTermPlay(screen tcell.Screen) (*TermPlay, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	screen.HideCursor()

	trm := &TermPlay{
		screen: screen,
		events: make(chan tcell.Event, eventQueueLen),
	}

	// PollEvent() returns nil once the screen has been finalised
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case trm.events <- ev:
			default:
			}
		}
	}()

	return trm, nil
}

// Destroy implements the gui.GUI interface.
func (trm *TermPlay) Destroy(output io.Writer) {
	trm.screen.Fini()
}

// Events implements the gui.GUI interface.
func (trm *TermPlay) Events() []userinput.Event {
	var events []userinput.Event

	for {
		select {
		case ev := <-trm.events:
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

// terminals do not report key releases so every keyboard event is a key
// press. key names are translated to match SDL names
func translate(ev tcell.Event) (userinput.Event, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil, false
	}

	mod := userinput.KeyModNone
	switch {
	case kev.Modifiers()&tcell.ModAlt != 0:
		mod = userinput.KeyModAlt
	case kev.Modifiers()&tcell.ModShift != 0:
		mod = userinput.KeyModShift
	case kev.Modifiers()&tcell.ModCtrl != 0:
		mod = userinput.KeyModCtrl
	}

	var key string

	switch kev.Key() {
	case tcell.KeyCtrlC:
		return userinput.EventQuit{}, true
	case tcell.KeyEscape:
		key = "Escape"
	case tcell.KeyUp:
		key = "Up"
	case tcell.KeyDown:
		key = "Down"
	case tcell.KeyLeft:
		key = "Left"
	case tcell.KeyRight:
		key = "Right"
	case tcell.KeyEnter:
		key = "Return"
	case tcell.KeyRune:
		if kev.Rune() == ' ' {
			key = "Space"
		} else {
			key = strings.ToUpper(string(kev.Rune()))
		}
	default:
		key = kev.Name()
	}

	return userinput.EventKeyboard{Key: key, Down: true, Mod: mod}, true
}
