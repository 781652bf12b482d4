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

// Package joystick reads the Qwiic analog joystick over I2C and decodes the
// readings into a Sample and from there into a direction for the worm.
//
// The joystick presents its current state as five consecutive registers,
// starting at register 0x03:
//
//	0x03 X MSB
//	0x04 X LSB
//	0x05 Y MSB
//	0x06 Y LSB
//	0x07 button (zero when pressed)
//
// The five registers are read in a single block with ReadBlock(). The
// Reader performs no retries and no caching. ReadAndDecode() is the function
// most callers want: it takes the previous Sample and returns it unchanged if
// the bus read fails.
package joystick

import (
	"fmt"

	"github.com/jetsetilly/wormy/curated"
	"github.com/jetsetilly/wormy/hardware/i2c"
)

// DefaultAddress of the joystick on the I2C bus.
const DefaultAddress = 0x20

// DefaultRegister is the first register of the block read.
const DefaultRegister = 0x03

// BlockLen is the number of bytes in a joystick block read.
const BlockLen = 5

// BusReadFailure is the curated error pattern for a failed read of the
// joystick block. The single placeholder value is the underlying cause.
const BusReadFailure = "joystick: bus read: %v"

// Reader reads joystick blocks from the I2C bus.
type Reader struct {
	bus      i2c.Bus
	address  uint16
	register uint8
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(bus i2c.Bus, address uint16, register uint8) (*Reader, error) {
	if bus == nil {
		return nil, fmt.Errorf("joystick: no bus")
	}
	if address > i2c.MaxAddress {
		return nil, fmt.Errorf("joystick: address %#02x is not a 7-bit address", address)
	}
	return &Reader{
		bus:      bus,
		address:  address,
		register: register,
	}, nil
}

func (rdr *Reader) String() string {
	return fmt.Sprintf("joystick at %#02x (register %#02x)", rdr.address, rdr.register)
}

// ReadBlock reads the five byte joystick block from the bus. Field order is
// X high, X low, Y high, Y low, button.
//
// Any failure is returned as a BusReadFailure.
func (rdr *Reader) ReadBlock() ([]byte, error) {
	block := make([]byte, BlockLen)
	err := rdr.bus.Tx(rdr.address, []byte{rdr.register}, block)
	if err != nil {
		return nil, curated.Errorf(BusReadFailure, err)
	}
	return block, nil
}

// ReadAndDecode reads a block from the bus and decodes it. If the read fails
// then the previous sample is returned along with the error. Callers that are
// happy to play on with a stale reading can log the error and carry on.
func (rdr *Reader) ReadAndDecode(previous Sample) (Sample, error) {
	block, err := rdr.ReadBlock()
	if err != nil {
		return previous, err
	}
	return Decode(block), nil
}
