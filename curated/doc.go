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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in the
// fmt package. The pattern is what identifies the error. For this reason
// patterns that are tested for should be stored as a const string, suitably
// named and commented. For example, the joystick package has:
//
//	const BusReadFailure = "joystick: bus read: %v"
//
// and the caller can check for it with:
//
//	if curated.Is(err, joystick.BusReadFailure) {
//		// use previous sample
//	}
//
// The Has() function is similar to Is() but checks whether the pattern
// occurs anywhere in the error chain.
//
//	e := curated.Errorf(joystick.BusReadFailure, cause)
//	f := curated.Errorf("monitor: %v", e)
//
//	curated.Is(f, joystick.BusReadFailure)  // false
//	curated.Has(f, joystick.BusReadFailure) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors.
//
// Curated errors also implement Unwrap() so that a non-curated cause (an
// error from the bus driver for example) can be found with errors.Is() and
// errors.As() from the standard library.
//
// The Error() function normalises the error chain. Specifically, the chain
// does not contain duplicate adjacent parts. Chains are thought of as parts
// separated by the sub-string ": ". So a message like:
//
//	playmode: playmode: quit
//
// is printed as:
//
//	playmode: quit
package curated
