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

// Package modalflag wraps the flag package of the standard library so that a
// program can have more than one mode of operation, each mode with its own
// set of flags.
//
// Arguments are given to the Modes type with NewArgs() and then processed
// with Parse(). Any sub-modes for the next call to Parse() are added with
// AddSubModes(). The first sub-mode in the list is the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "JOYSTICK")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
// The selected mode is returned by Mode(). Flags for that mode are added
// after a call to NewMode(), and Parse() is called again:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		fps := md.AddInt("fps", 15, "frames per second")
//		p, err := md.Parse()
//		...
//	}
//
// Mode names are not case sensitive. A -help flag prints the flags and
// sub-modes available at that point and Parse() returns ParseHelp.
package modalflag
