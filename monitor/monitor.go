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

// Package monitor prints readings from the joystick to a terminal. It is
// useful for checking that the joystick is wired correctly and for seeing
// where the dead zone lies.
//
// Each line of output shows the X and Y axis values followed by the raw value
// of the button register:
//
//	512 509  Button = 1
//
// Bus errors are printed as they happen and the previous reading is shown
// again.
package monitor

import (
	"fmt"
	"io"

	"github.com/jetsetilly/wormy/hardware/joystick"
	"github.com/jetsetilly/wormy/performance/limiter"
)

// QuitKey ends the monitor when pressed.
const QuitKey = 'q'

// the reading interval is 50ms
const readingsPerSecond = 20

// Stick is the part of the joystick Reader used by the Monitor.
type Stick interface {
	ReadAndDecode(previous joystick.Sample) (joystick.Sample, error)
}

// Monitor reads the joystick at a regular interval and prints the result.
type Monitor struct {
	stick  Stick
	output io.Writer
	lim    *limiter.Limiter
	sample joystick.Sample
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(stick Stick, output io.Writer, clock limiter.Clock) (*Monitor, error) {
	lim, err := limiter.NewFPSLimiterWithClock(readingsPerSecond, clock)
	if err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	return &Monitor{
		stick:  stick,
		output: output,
		lim:    lim,
		sample: joystick.Centre,
	}, nil
}

// Step reads the joystick once and prints the reading.
func (mon *Monitor) Step() {
	s, err := mon.stick.ReadAndDecode(mon.sample)
	if err != nil {
		fmt.Fprintln(mon.output, err)
	}
	mon.sample = s
	fmt.Fprintln(mon.output, s)
}

// Run prints readings until there is a value on the quit channel or the
// channel is closed.
func (mon *Monitor) Run(quit <-chan bool) {
	for {
		select {
		case <-quit:
			return
		default:
		}

		mon.Step()
		mon.lim.Wait()
	}
}

// Keys reads from input and signals the returned channel when the QuitKey is
// pressed. The channel is closed if input ends.
func Keys(input io.Reader) <-chan bool {
	quit := make(chan bool, 1)

	go func() {
		defer close(quit)
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if err != nil {
				return
			}
			if n == 1 && b[0] == QuitKey {
				quit <- true
				return
			}
		}
	}()

	return quit
}
