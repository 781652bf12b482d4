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

package joystick_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/wormy/curated"
	"github.com/jetsetilly/wormy/hardware/joystick"
	"github.com/jetsetilly/wormy/test"
	"github.com/jetsetilly/wormy/worm"
)

var (
	errNoDevice  = errors.New("no device")
	errShortRead = errors.New("short read")
)

// bus is a fake I2C bus. each call to Tx() copies the next block into the
// read buffer. a nil block causes Tx() to fail, as does a block that is too
// short to fill the read buffer
type bus struct {
	blocks [][]byte
	idx    int

	addr uint16
	w    []byte
}

func (b *bus) Tx(addr uint16, w []byte, r []byte) error {
	b.addr = addr
	b.w = append(b.w[:0], w...)

	if b.idx >= len(b.blocks) {
		return errNoDevice
	}
	blk := b.blocks[b.idx]
	b.idx++
	if blk == nil {
		return errNoDevice
	}
	if len(blk) < len(r) {
		return errShortRead
	}
	copy(r, blk)
	return nil
}

func (b *bus) Close() error {
	return nil
}

// axis returns the high and low bytes that decode to the value v
func axis(v int) (byte, byte) {
	c := v << 6
	return byte(c >> 8), byte(c)
}

func block(x, y int, button byte) []byte {
	xh, xl := axis(x)
	yh, yl := axis(y)
	return []byte{xh, xl, yh, yl, button}
}

func TestDecode(t *testing.T) {
	s := joystick.Decode([]byte{0x03, 0xc0, 0x80, 0x00, 0x01})
	test.ExpectEquality(t, s.X, 15)
	test.ExpectEquality(t, s.Y, 512)
	test.ExpectEquality(t, s.Pressed, false)

	// full range
	s = joystick.Decode([]byte{0xff, 0xff, 0x00, 0x00, 0x00})
	test.ExpectEquality(t, s.X, 1023)
	test.ExpectEquality(t, s.Y, 0)
	test.ExpectEquality(t, s.Pressed, true)

	// the low six bits of the composite are discarded
	s = joystick.Decode([]byte{0x7f, 0x3f, 0x7f, 0x40, 0x01})
	test.ExpectEquality(t, s.X, 508)
	test.ExpectEquality(t, s.Y, 509)
}

func TestDecodeIsPure(t *testing.T) {
	blk := []byte{0x12, 0x34, 0x56, 0x78, 0x00}
	a := joystick.Decode(blk)
	b := joystick.Decode(blk)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, blk[0], byte(0x12))
}

func TestDirection(t *testing.T) {
	for _, tc := range []struct {
		x, y    int
		dir     worm.Direction
		changed bool
	}{
		{15, 512, worm.Right, true},
		{449, 512, worm.Right, true},
		{576, 512, worm.Left, true},
		{512, 449, worm.Down, true},
		{512, 576, worm.Up, true},

		// X is checked before Y
		{100, 900, worm.Right, true},
		{900, 100, worm.Left, true},

		// dead zone boundaries are inclusive
		{500, 500, worm.Up, false},
		{450, 450, worm.Up, false},
		{575, 575, worm.Up, false},
	} {
		d, ok := joystick.Decode(block(tc.x, tc.y, 1)).Direction()
		test.ExpectEquality(t, ok, tc.changed, tc.x, tc.y)
		if tc.changed {
			test.ExpectEquality(t, d, tc.dir, tc.x, tc.y)
		}
	}
}

func TestReadBlock(t *testing.T) {
	b := &bus{blocks: [][]byte{block(100, 900, 0)}}
	rdr, err := joystick.NewReader(b, joystick.DefaultAddress, joystick.DefaultRegister)
	test.DemandSuccess(t, err)

	blk, err := rdr.ReadBlock()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(blk), joystick.BlockLen)
	test.ExpectEquality(t, b.addr, uint16(0x20))
	test.ExpectEquality(t, len(b.w), 1)
	test.ExpectEquality(t, b.w[0], byte(0x03))

	_, err = rdr.ReadBlock()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, joystick.BusReadFailure))
	test.ExpectSuccess(t, errors.Is(err, errNoDevice))
}

func TestReadBlockShort(t *testing.T) {
	rdr, err := joystick.NewReader(&bus{blocks: [][]byte{{0x80, 0x00, 0x80}}}, joystick.DefaultAddress, joystick.DefaultRegister)
	test.DemandSuccess(t, err)

	blk, err := rdr.ReadBlock()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, joystick.BusReadFailure))
	test.ExpectSuccess(t, errors.Is(err, errShortRead))
	test.ExpectEquality(t, len(blk), 0)
}

func TestReadAndDecode(t *testing.T) {
	b := &bus{blocks: [][]byte{block(100, 512, 1), nil, block(512, 900, 0)}}
	rdr, err := joystick.NewReader(b, joystick.DefaultAddress, joystick.DefaultRegister)
	test.DemandSuccess(t, err)

	s, err := rdr.ReadAndDecode(joystick.Centre)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.X, 100)

	// failed read returns the previous sample
	stale, err := rdr.ReadAndDecode(s)
	test.ExpectSuccess(t, curated.Is(err, joystick.BusReadFailure))
	test.ExpectEquality(t, stale, s)

	s, err = rdr.ReadAndDecode(stale)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Y, 900)
	test.ExpectEquality(t, s.Pressed, true)
}

func TestNewReader(t *testing.T) {
	_, err := joystick.NewReader(nil, joystick.DefaultAddress, joystick.DefaultRegister)
	test.ExpectFailure(t, err)
	_, err = joystick.NewReader(&bus{}, 0x80, joystick.DefaultRegister)
	test.ExpectFailure(t, err)
}

func TestButton(t *testing.T) {
	btn := joystick.NewButton()
	test.ExpectFailure(t, btn.Released())

	released := joystick.Sample{Button: 1}
	pressed := joystick.Sample{Pressed: true}

	btn.Tick(released)
	test.ExpectFailure(t, btn.Released())

	btn.Tick(pressed)
	test.ExpectFailure(t, btn.Released())

	btn.Tick(pressed)
	test.ExpectFailure(t, btn.Released())

	btn.Tick(released)
	test.ExpectSuccess(t, btn.Released())

	btn.Tick(released)
	test.ExpectFailure(t, btn.Released())
}

func TestButtonSettle(t *testing.T) {
	released := joystick.Sample{Button: 1}
	pressed := joystick.Sample{Pressed: true}

	// settling removes the release edge
	btn := joystick.NewButton()
	btn.Tick(pressed)
	btn.Tick(released)
	btn.Settle()
	test.ExpectFailure(t, btn.Released())

	// a button held when settled is released on the next high tick
	btn = joystick.NewButton()
	btn.Tick(pressed)
	btn.Settle()
	test.ExpectFailure(t, btn.Released())
	btn.Tick(released)
	test.ExpectSuccess(t, btn.Released())
}
