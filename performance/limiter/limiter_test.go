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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/wormy/performance/limiter"
	"github.com/jetsetilly/wormy/test"
)

// clock only moves forward when told to or when Sleep() is called
type clock struct {
	now   time.Time
	slept []time.Duration
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *clock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestBadLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(15)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Period(), time.Second/15)
}

func TestSleepRemainder(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	lim, err := limiter.NewFPSLimiterWithClock(10, c)
	test.DemandSuccess(t, err)

	// first wait returns immediately
	lim.Wait()
	test.ExpectEquality(t, len(c.slept), 0)

	// the frame took 30ms of the 100ms period
	c.advance(30 * time.Millisecond)
	lim.Wait()
	test.DemandEquality(t, len(c.slept), 1)
	test.ExpectEquality(t, c.slept[0], 70*time.Millisecond)
}

func TestNoCatchUp(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	lim, err := limiter.NewFPSLimiterWithClock(10, c)
	test.DemandSuccess(t, err)

	lim.Wait()

	// overrun frame does not sleep
	c.advance(250 * time.Millisecond)
	lim.Wait()
	test.ExpectEquality(t, len(c.slept), 0)

	// and the following frame gets a full period
	c.advance(10 * time.Millisecond)
	lim.Wait()
	test.DemandEquality(t, len(c.slept), 1)
	test.ExpectEquality(t, c.slept[0], 90*time.Millisecond)
}

func TestReset(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	lim, err := limiter.NewFPSLimiterWithClock(10, c)
	test.DemandSuccess(t, err)

	lim.Wait()

	// a long pause between frames. Reset() starts a new period so the next
	// frame is neither cut short nor caught up
	c.advance(time.Second)
	lim.Reset()
	c.advance(20 * time.Millisecond)
	lim.Wait()
	test.DemandEquality(t, len(c.slept), 1)
	test.ExpectEquality(t, c.slept[0], 80*time.Millisecond)
}

func TestResetBeforeFirstWait(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	lim, err := limiter.NewFPSLimiterWithClock(10, c)
	test.DemandSuccess(t, err)

	// the first frame after Reset() is paced like any other
	lim.Reset()
	lim.Wait()
	test.DemandEquality(t, len(c.slept), 1)
	test.ExpectEquality(t, c.slept[0], 100*time.Millisecond)
}

func TestMeasured(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	lim, err := limiter.NewFPSLimiterWithClock(20, c)
	test.DemandSuccess(t, err)

	lim.Wait()
	test.ExpectEquality(t, lim.Measured(), float32(0))

	for i := 0; i < 20; i++ {
		lim.Wait()
	}
	test.ExpectEquality(t, lim.Measured(), float32(20))
}
