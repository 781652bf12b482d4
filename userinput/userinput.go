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

package userinput

import (
	"github.com/jetsetilly/wormy/hardware/joystick"
	"github.com/jetsetilly/wormy/logger"
	"github.com/jetsetilly/wormy/worm"
)

// Stick is the part of the joystick Reader used by the Multiplexer.
type Stick interface {
	ReadAndDecode(previous joystick.Sample) (joystick.Sample, error)
}

// Gathered is the result of a single call to Multiplexer.Gather().
type Gathered struct {
	// the direction the worm should be travelling in. only meaningful if
	// Changed is true
	Direction worm.Direction
	Changed   bool

	// the user has asked to end the program
	Quit bool

	// a key has been pressed or the joystick button has been released. used
	// to leave the start and game over screens
	Start bool
}

// Multiplexer combines keyboard events from the GUI with readings from the
// joystick.
type Multiplexer struct {
	stick  Stick
	sample joystick.Sample
	button joystick.Button
}

// NewMultiplexer is the preferred method of initialisation for the
// Multiplexer type. The stick argument can be nil, in which case input comes
// only from the keyboard.
func NewMultiplexer(stick Stick) *Multiplexer {
	return &Multiplexer{
		stick:  stick,
		sample: joystick.Centre,
		button: joystick.NewButton(),
	}
}

// Poll reads the joystick once. A failed read is logged and the previous
// sample is kept.
func (mux *Multiplexer) Poll() joystick.Sample {
	if mux.stick == nil {
		return mux.sample
	}

	s, err := mux.stick.ReadAndDecode(mux.sample)
	if err != nil {
		logger.Log(logger.Allow, "joystick", err.Error())
	}
	mux.sample = s
	mux.button.Tick(s)

	return s
}

// Sample returns the most recent joystick sample.
func (mux *Multiplexer) Sample() joystick.Sample {
	return mux.sample
}

// Gather processes the events in the order they were delivered and then
// applies the joystick sample. The current direction is used by the reversal
// lock, which applies only to keyboard input.
//
// A joystick reading outside of the dead zone overrides any direction chosen
// by the keyboard. A quit event stops processing immediately.
func (mux *Multiplexer) Gather(events []Event, sample joystick.Sample, current worm.Direction) Gathered {
	g := Gathered{Direction: current}

	for _, ev := range events {
		switch ev := ev.(type) {
		case EventQuit:
			return Gathered{Direction: current, Quit: true}

		case EventKeyboard:
			if ev.Key == KeyQuit {
				if ev.Down {
					return Gathered{Direction: current, Quit: true}
				}
				continue
			}

			if ev.Down {
				g.Start = true
			}

			if d, ok := keyboard(ev, g.Direction); ok {
				g.Direction = d
				g.Changed = true
			}
		}
	}

	if d, ok := sample.Direction(); ok {
		g.Direction = d
		g.Changed = true
	}

	if mux.button.Released() {
		g.Start = true
	}

	return g
}

// Flush forgets any pending button edge. Called on entering the start and game
// over screens so that a press from a previous screen is not acted on twice.
//
// A button that is held down at the time of the flush is still held. Letting
// go of it afterwards is a release.
func (mux *Multiplexer) Flush() {
	mux.button.Settle()
}
