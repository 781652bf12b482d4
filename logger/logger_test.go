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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/wormy/logger"
	"github.com/jetsetilly/wormy/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}

	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.CompareWriter buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	// a bus that has gone away produces the same error every frame
	for i := 0; i < 15; i++ {
		log.Log(logger.Allow, "joystick", "no device")
	}
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "joystick: no device (repeat x15)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)

	tw.Clear()
	log.Logf(logger.Allow, "worm", "score %d", 3)
	log.Log(logger.Allow, "joystick", "no device")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "joystick: no device (repeat x15)\nworm: score 3\njoystick: no device\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")

	tw := &test.CompareWriter{}
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "b: 2\nc: 3\n")
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(logger.Deny, "test", "not logged")
	test.ExpectEquality(t, len(log.Entries()), 0)

	log.Log(logger.Allow, "test", "logged")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}
	log.SetEcho(tw)
	log.Log(logger.Allow, "test", "echo")
	test.ExpectEquality(t, tw.String(), "test: echo\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "test", "no echo")
	test.ExpectEquality(t, tw.String(), "test: echo\n")
}
