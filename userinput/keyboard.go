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

import "github.com/jetsetilly/wormy/worm"

// KeyQuit is the name of the key that ends the program.
const KeyQuit = "Escape"

// keyboard translates a key press into a direction. Returns false if the key
// is not a direction key or if the direction would reverse the worm into
// itself.
func keyboard(ev EventKeyboard, current worm.Direction) (worm.Direction, bool) {
	if !ev.Down {
		return current, false
	}

	var d worm.Direction

	switch ev.Key {
	case "Up", "W":
		d = worm.Up
	case "Down", "S":
		d = worm.Down
	case "Left", "A":
		d = worm.Left
	case "Right", "D":
		d = worm.Right
	default:
		return current, false
	}

	if d == current.Opposite() {
		return current, false
	}

	return d, true
}
