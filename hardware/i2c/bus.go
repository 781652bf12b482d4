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

// Package i2c is the boundary between the game and the I2C bus the joystick
// is attached to. The game only ever asks for "write these bytes to the
// device and then read N bytes back", which is the Tx() function of the Bus
// interface. Everything below that (clock stretching, addressing, the kernel
// driver) belongs to periph.io.
package i2c

import (
	"fmt"

	periphi2c "periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Bus is a single I2C bus. Tx() performs a write followed by a read in a
// single transaction (a repeated start), which is how registers are read
// from most I2C devices.
//
// Tx() either fills r completely or returns an error. A device that returns
// fewer bytes than asked for is an error.
type Bus interface {
	Tx(addr uint16, w []byte, r []byte) error
	Close() error
}

// MaxAddress is the largest valid 7-bit device address.
const MaxAddress = 0x7f

// HostBus is an I2C bus on the host machine. On a Raspberry Pi the default
// bus is /dev/i2c-1.
type HostBus struct {
	bus periphi2c.BusCloser
}

// OpenHostBus opens the named I2C bus. An empty name opens the first bus
// found on the host.
func OpenHostBus(name string) (*HostBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("i2c: %w", err)
	}

	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("i2c: %w", err)
	}

	return &HostBus{bus: bus}, nil
}

// Tx implements the Bus interface.
func (b *HostBus) Tx(addr uint16, w []byte, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

// Close implements the Bus interface.
func (b *HostBus) Close() error {
	return b.bus.Close()
}

func (b *HostBus) String() string {
	return b.bus.String()
}
