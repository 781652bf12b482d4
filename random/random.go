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

// Package random should be used in preference to the math/rand package when a
// random number is required by the game.
//
// Each Random instance has its own source, seeded once from the current time.
// If the same random numbers are required every single time then set ZeroSeed
// to true before the first call to Intn(). This is useful for testing
// purposes.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a source of random numbers. It satisfies the worm.Random
// interface.
type Random struct {
	// use zero seed rather than the random base seed
	ZeroSeed bool

	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.src == nil {
		if rnd.ZeroSeed {
			rnd.src = rand.New(rand.NewSource(0))
		} else {
			rnd.src = rand.New(rand.NewSource(baseSeed))
		}
	}
	return rnd.src
}

// Reseed restarts the sequence of random numbers. Only useful in conjunction
// with ZeroSeed.
func (rnd *Random) Reseed() {
	rnd.src = nil
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
