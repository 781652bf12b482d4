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

// Package userinput handles input from the keyboard and from the joystick
// and turns it into something the worm can act on.
//
// It can be thought of as a translation layer between the GUI implementation
// and the worm package. The GUI delivers Event values, the joystick delivers
// joystick.Sample values, and the Multiplexer combines the two into a single
// Gathered result for every tick of the game.
//
// The GUI implementation in use during development was SDL and so key names
// follow SDL conventions. Other GUIs must translate their key names to match.
package userinput
