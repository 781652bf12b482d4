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

// Button records the state of the joystick button line, whether it is high
// or low, and also the state immediately previous.
//
// The button is active-low so a high line means the button is released.
// Moving from one state to the other is done with Tick(). The function
// Released() is true on the tick the line moves from low to high.
type Button struct {
	from bool
	to   bool
}

// NewButton returns a Button with the line high (released).
func NewButton() Button {
	return Button{from: true, to: true}
}

// Tick the button line with the latest sample.
func (b *Button) Tick(s Sample) {
	b.from = b.to
	b.to = !s.Pressed
}

// Released is true if the line has moved from low to high.
func (b *Button) Released() bool {
	return !b.from && b.to
}

// Settle forgets the most recent edge. The line keeps its current state, so a
// button that is held down is still held and will be Released() when let go.
func (b *Button) Settle() {
	b.from = b.to
}
