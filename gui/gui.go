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

// Package gui describes what the game looks like without saying how it is
// drawn. The game builds a Frame, an ordered list of drawing operations, and
// hands it to an implementation of the GUI interface.
//
// Two implementations are provided in sub-packages. The sdlplay package draws
// to an SDL window and the termplay package draws to a terminal.
package gui

import (
	"io"

	"github.com/jetsetilly/wormy/userinput"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Events returns every event that has arrived since the previous call.
	// Returns an empty slice if there are no events.
	Events() []userinput.Event

	// Present draws the Frame and makes it visible.
	Present(f Frame) error

	// Destroy releases all resources held by the GUI. Any errors are written
	// to the io.Writer.
	Destroy(output io.Writer)
}
