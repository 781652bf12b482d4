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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(15)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		tick()
//	}
//
// Wait() measures the time elapsed since the previous call and sleeps for
// whatever remains of the frame period. A frame that overruns is not caught
// up: the next period starts from the moment the overrun frame ended.
package limiter

import (
	"fmt"
	"time"
)

// Clock is the source of time for the Limiter.
type Clock interface {
	Now() time.Time
	Sleep(time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// RealClock uses the time package.
var RealClock Clock = realClock{}

// Limiter will allow Wait() to return at most framesPerSecond times a second.
type Limiter struct {
	clock Clock

	framesPerSecond int
	period          time.Duration

	started bool
	last    time.Time

	// measurement of the actual frame rate
	measureStart time.Time
	measureCount int
	measured     float32
}

// NewFPSLimiter is the preferred method of initialisation for the Limiter
// type.
func NewFPSLimiter(framesPerSecond int) (*Limiter, error) {
	return NewFPSLimiterWithClock(framesPerSecond, RealClock)
}

// NewFPSLimiterWithClock is the same as NewFPSLimiter() but with an
// alternative Clock.
func NewFPSLimiterWithClock(framesPerSecond int, clock Clock) (*Limiter, error) {
	lim := &Limiter{clock: clock}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the limit at which the Limiter waits.
func (lim *Limiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: frame rate must be positive (%d)", framesPerSecond)
	}
	lim.framesPerSecond = framesPerSecond
	lim.period = time.Second / time.Duration(framesPerSecond)
	return nil
}

// Period returns the duration of a single frame.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Reset starts a new frame period from the current time. The next call to
// Wait() will sleep for whatever remains of that period.
func (lim *Limiter) Reset() {
	now := lim.clock.Now()
	lim.started = true
	lim.last = now
	lim.measureStart = now
	lim.measureCount = 0
}

// Wait will block until the remainder of the frame period has elapsed.
func (lim *Limiter) Wait() {
	now := lim.clock.Now()

	// without a call to Reset() the first frame period starts here
	if !lim.started {
		lim.started = true
		lim.last = now
		lim.measureStart = now
		lim.measureCount = 0
		return
	}

	elapsed := now.Sub(lim.last)
	if elapsed < lim.period {
		lim.clock.Sleep(lim.period - elapsed)
		now = lim.clock.Now()
	}
	lim.last = now

	lim.measureCount++
	if d := now.Sub(lim.measureStart); d >= time.Second {
		lim.measured = float32(float64(lim.measureCount) / d.Seconds())
		lim.measureStart = now
		lim.measureCount = 0
	}
}

// Measured returns the frame rate as most recently measured. Will be zero
// until Wait() has been running for at least a second.
func (lim *Limiter) Measured() float32 {
	return lim.measured
}

func (lim *Limiter) String() string {
	return fmt.Sprintf("%dfps (measured %.2ffps)", lim.framesPerSecond, lim.measured)
}
