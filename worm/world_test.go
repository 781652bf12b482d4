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

package worm_test

import (
	"testing"

	"github.com/jetsetilly/wormy/test"
	"github.com/jetsetilly/wormy/worm"
)

// sequence returns the values in order, wrapped to the range requested
type sequence struct {
	values []int
	idx    int
	calls  int
}

func (s *sequence) Intn(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.idx%len(s.values)] % n
	s.idx++
	return v
}

func newWorld(t *testing.T, rnd worm.Random) *worm.World {
	t.Helper()
	w, err := worm.NewWorld(96, 54, rnd)
	test.DemandSuccess(t, err)
	return w
}

func expectBody(t *testing.T, w *worm.World, expected []worm.Cell) {
	t.Helper()
	s := w.Snapshot()
	test.DemandEquality(t, len(s.Body), len(expected))
	for i := range expected {
		test.ExpectEquality(t, s.Body[i], expected[i], i)
	}
}

var startBody = []worm.Cell{{Col: 5, Row: 5}, {Col: 4, Row: 5}, {Col: 3, Row: 5}}

func TestGridTooSmall(t *testing.T) {
	_, err := worm.NewWorld(10, 54, &sequence{})
	test.ExpectFailure(t, err)
	_, err = worm.NewWorld(96, 8, &sequence{})
	test.ExpectFailure(t, err)
}

func TestReset(t *testing.T) {
	// start position is offset from the edge by five cells. apple values
	// follow the start position values
	rnd := &sequence{values: []int{10, 20, 30, 40}}
	w := newWorld(t, rnd)

	expectBody(t, w, []worm.Cell{{Col: 15, Row: 25}, {Col: 14, Row: 25}, {Col: 13, Row: 25}})
	test.ExpectEquality(t, w.Snapshot().Apple, worm.Cell{Col: 30, Row: 40})
	test.ExpectEquality(t, w.Direction(), worm.Right)
	test.ExpectEquality(t, w.Score(), 0)
}

func TestResetRange(t *testing.T) {
	// the largest values returned by Intn() must keep the worm five cells away
	// from the right and bottom edges
	rnd := &sequence{values: []int{85, 43}}
	w := newWorld(t, rnd)
	test.ExpectEquality(t, w.Head(), worm.Cell{Col: 90, Row: 48})
}

func TestGrowth(t *testing.T) {
	rnd := &sequence{values: []int{0}}
	w := newWorld(t, rnd)
	test.DemandSuccess(t, w.Arrange(startBody, worm.Cell{Col: 6, Row: 5}, worm.Right))

	rnd.values = []int{70, 30}
	rnd.idx = 0
	rnd.calls = 0

	test.ExpectEquality(t, w.Tick(worm.Right, false), worm.Continue)
	expectBody(t, w, []worm.Cell{{Col: 6, Row: 5}, {Col: 5, Row: 5}, {Col: 4, Row: 5}})

	// the head is on the apple. the tail is kept on this tick
	test.ExpectEquality(t, w.Tick(worm.Right, false), worm.Continue)
	expectBody(t, w, []worm.Cell{{Col: 7, Row: 5}, {Col: 6, Row: 5}, {Col: 5, Row: 5}, {Col: 4, Row: 5}})
	test.ExpectEquality(t, w.Score(), 1)

	// a new apple is drawn from the grid
	test.ExpectEquality(t, rnd.calls, 2)
	test.ExpectEquality(t, w.Snapshot().Apple, worm.Cell{Col: 70, Row: 30})
}

func TestGrowthOnArrival(t *testing.T) {
	// the worm in the growth example has its head already on the apple
	w := newWorld(t, &sequence{values: []int{50, 50}})
	test.DemandSuccess(t, w.Arrange(startBody, worm.Cell{Col: 5, Row: 5}, worm.Right))

	test.ExpectEquality(t, w.Tick(worm.Right, false), worm.Continue)
	expectBody(t, w, []worm.Cell{{Col: 6, Row: 5}, {Col: 5, Row: 5}, {Col: 4, Row: 5}, {Col: 3, Row: 5}})
	test.ExpectEquality(t, w.Score(), 1)
	test.ExpectInequality(t, w.Snapshot().Apple, worm.Cell{Col: 5, Row: 5})
}

func TestNoGrowth(t *testing.T) {
	w := newWorld(t, &sequence{})
	test.DemandSuccess(t, w.Arrange(startBody, worm.Cell{Col: 50, Row: 50}, worm.Right))

	test.ExpectEquality(t, w.Tick(worm.Right, false), worm.Continue)
	expectBody(t, w, []worm.Cell{{Col: 6, Row: 5}, {Col: 5, Row: 5}, {Col: 4, Row: 5}})
	test.ExpectEquality(t, w.Score(), 0)
}

func TestMovement(t *testing.T) {
	w := newWorld(t, &sequence{})
	apple := worm.Cell{Col: 50, Row: 50}

	for _, tc := range []struct {
		dir  worm.Direction
		head worm.Cell
	}{
		{worm.Up, worm.Cell{Col: 5, Row: 4}},
		{worm.Down, worm.Cell{Col: 5, Row: 6}},
		{worm.Right, worm.Cell{Col: 6, Row: 5}},
	} {
		test.DemandSuccess(t, w.Arrange(startBody, apple, worm.Right))
		test.ExpectEquality(t, w.Tick(tc.dir, true), worm.Continue, tc.dir)
		test.ExpectEquality(t, w.Head(), tc.head, tc.dir)
		test.ExpectEquality(t, w.Direction(), tc.dir, tc.dir)
	}

	// moving left with a body extending to the left
	body := []worm.Cell{{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 7, Row: 5}}
	test.DemandSuccess(t, w.Arrange(body, apple, worm.Left))
	test.ExpectEquality(t, w.Tick(worm.Left, true), worm.Continue)
	test.ExpectEquality(t, w.Head(), worm.Cell{Col: 4, Row: 5})
}

func TestUnchangedDirection(t *testing.T) {
	w := newWorld(t, &sequence{})
	test.DemandSuccess(t, w.Arrange(startBody, worm.Cell{Col: 50, Row: 50}, worm.Right))

	// the direction argument is ignored if changed is false
	test.ExpectEquality(t, w.Tick(worm.Up, false), worm.Continue)
	test.ExpectEquality(t, w.Direction(), worm.Right)
	test.ExpectEquality(t, w.Head(), worm.Cell{Col: 6, Row: 5})
}

func TestBoundaryCollision(t *testing.T) {
	for _, row := range []int{0, 10, 53} {
		w := newWorld(t, &sequence{})
		body := []worm.Cell{{Col: 0, Row: row}, {Col: 1, Row: row}, {Col: 2, Row: row}}
		test.DemandSuccess(t, w.Arrange(body, worm.Cell{Col: 50, Row: 50}, worm.Left))

		// the worm leaves the grid but the collision isn't seen until the
		// next tick
		test.ExpectEquality(t, w.Tick(worm.Left, false), worm.Continue, row)
		test.ExpectEquality(t, w.Head(), worm.Cell{Col: -1, Row: row}, row)
		test.ExpectEquality(t, w.Tick(worm.Left, false), worm.GameOver, row)

		// world is unchanged by a game over
		test.ExpectEquality(t, w.Head(), worm.Cell{Col: -1, Row: row}, row)
	}
}

func TestAllBoundaries(t *testing.T) {
	apple := worm.Cell{Col: 50, Row: 50}
	for _, tc := range []struct {
		body []worm.Cell
		dir  worm.Direction
	}{
		{[]worm.Cell{{Col: 95, Row: 5}, {Col: 94, Row: 5}, {Col: 93, Row: 5}}, worm.Right},
		{[]worm.Cell{{Col: 5, Row: 0}, {Col: 5, Row: 1}, {Col: 5, Row: 2}}, worm.Up},
		{[]worm.Cell{{Col: 5, Row: 53}, {Col: 5, Row: 52}, {Col: 5, Row: 51}}, worm.Down},
	} {
		w := newWorld(t, &sequence{})
		test.DemandSuccess(t, w.Arrange(tc.body, apple, tc.dir))
		test.ExpectEquality(t, w.Tick(tc.dir, false), worm.Continue, tc.dir)
		test.ExpectEquality(t, w.Tick(tc.dir, false), worm.GameOver, tc.dir)
	}
}

func TestSelfCollision(t *testing.T) {
	w := newWorld(t, &sequence{})

	// head shares a cell with a body segment
	body := []worm.Cell{{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 6}, {Col: 5, Row: 6}, {Col: 5, Row: 5}}
	test.DemandSuccess(t, w.Arrange(body, worm.Cell{Col: 50, Row: 50}, worm.Up))
	test.ExpectEquality(t, w.Tick(worm.Up, false), worm.GameOver)

	// reversing into the neck is a collision on the following tick
	test.DemandSuccess(t, w.Arrange(startBody, worm.Cell{Col: 50, Row: 50}, worm.Right))
	test.ExpectEquality(t, w.Tick(worm.Left, true), worm.Continue)
	test.ExpectEquality(t, w.Tick(worm.Left, false), worm.GameOver)
}

func TestScoreInvariant(t *testing.T) {
	// apples are always placed directly in front of the worm
	w := newWorld(t, &sequence{})
	body := []worm.Cell{{Col: 20, Row: 5}, {Col: 19, Row: 5}, {Col: 18, Row: 5}}
	test.DemandSuccess(t, w.Arrange(body, worm.Cell{Col: 20, Row: 5}, worm.Right))

	for i := 0; i < 10; i++ {
		s := w.Snapshot()
		test.ExpectEquality(t, s.Score, len(s.Body)-worm.InitialLength)
		test.DemandEquality(t, w.Tick(worm.Right, false), worm.Continue)
		test.DemandSuccess(t, w.Arrange(w.Snapshot().Body, w.Head(), worm.Right))
	}
	test.ExpectEquality(t, w.Score(), 10)
}

func TestSnapshotIsCopy(t *testing.T) {
	w := newWorld(t, &sequence{})
	test.DemandSuccess(t, w.Arrange(startBody, worm.Cell{Col: 50, Row: 50}, worm.Right))
	s := w.Snapshot()
	s.Body[0] = worm.Cell{Col: 0, Row: 0}
	test.ExpectEquality(t, w.Head(), worm.Cell{Col: 5, Row: 5})
}

func TestArrangeTooShort(t *testing.T) {
	w := newWorld(t, &sequence{})
	test.ExpectFailure(t, w.Arrange(startBody[:2], worm.Cell{}, worm.Right))
}

func TestOpposite(t *testing.T) {
	test.ExpectEquality(t, worm.Up.Opposite(), worm.Down)
	test.ExpectEquality(t, worm.Down.Opposite(), worm.Up)
	test.ExpectEquality(t, worm.Left.Opposite(), worm.Right)
	test.ExpectEquality(t, worm.Right.Opposite(), worm.Left)
}
