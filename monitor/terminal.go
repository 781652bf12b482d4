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

package monitor

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal switches a posix terminal between canonical and cbreak mode. In
// cbreak mode key presses are delivered immediately, without waiting for the
// return key.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The current attributes of the terminal are restored by
// CanonicalMode().
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("monitor: terminal requires an input file")
	}

	trm := &Terminal{input: input}

	if err := termios.Tcgetattr(input.Fd(), &trm.canAttr); err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	return trm, nil
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (trm *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
}

// CBreakMode puts the terminal into cbreak mode.
func (trm *Terminal) CBreakMode() error {
	return termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
}
