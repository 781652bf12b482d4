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

package joystick

import (
	"fmt"

	"github.com/jetsetilly/wormy/worm"
)

// the dead zone on both axes is [lowerThreshold, upperThreshold]
const (
	lowerThreshold = 450
	upperThreshold = 575
)

// Centre is a sample with the stick at rest and the button released. Useful
// as the previous value for the very first call to ReadAndDecode().
var Centre = Sample{X: 512, Y: 512}

// Sample is a single decoded reading of the joystick. Axis values are in the
// range 0 to 1023.
type Sample struct {
	X       int
	Y       int
	Pressed bool

	// the raw button value from the block. zero means pressed
	Button uint8
}

func (s Sample) String() string {
	return fmt.Sprintf("%d %d  Button = %d", s.X, s.Y, s.Button)
}

// Decode a joystick block into a Sample. The block must be at least BlockLen
// bytes long. Any extra bytes are ignored.
//
// Each axis is a 16 bit value of which only the top 10 bits are meaningful.
func Decode(block []byte) Sample {
	return Sample{
		X:       (int(block[0])<<8 | int(block[1])) >> 6,
		Y:       (int(block[2])<<8 | int(block[3])) >> 6,
		Pressed: block[4] == 0,
		Button:  block[4],
	}
}

// Direction returns the direction indicated by the sample. The bool is
// false if the stick is in the dead zone and the direction should be left
// unchanged.
//
// The X axis is checked before the Y axis so a diagonal push always results
// in a horizontal direction. The axes are wired so that a low value on X is
// right and a low value on Y is down.
func (s Sample) Direction() (worm.Direction, bool) {
	switch {
	case s.X < lowerThreshold:
		return worm.Right, true
	case s.X > upperThreshold:
		return worm.Left, true
	case s.Y < lowerThreshold:
		return worm.Down, true
	case s.Y > upperThreshold:
		return worm.Up, true
	}
	return worm.Up, false
}
