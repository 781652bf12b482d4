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

// KeyMod identifies the modifier keys held at the time of a keyboard event.
type KeyMod int

// list of valid key modifiers
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different types of events that can occur in the
// GUI. Events are handled with a type switch.
type Event interface{}

// EventQuit is sent when the GUI window (or the terminal) has been closed.
type EventQuit struct{}

// EventKeyboard is sent on a keypress or release. Key names follow the names
// returned by SDL's GetKeyName(). For example "Up", "W" and "Escape".
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}
