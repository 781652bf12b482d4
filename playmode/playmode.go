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

// Package playmode runs the game. The game moves through three phases: the
// start screen, playing and game over. The start screen is shown once. After
// that the game alternates between playing and game over until the user
// quits.
//
// Everything happens on the calling goroutine. SDL requires that this is the
// main thread.
package playmode

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/wormy/curated"
	"github.com/jetsetilly/wormy/gui"
	"github.com/jetsetilly/wormy/logger"
	"github.com/jetsetilly/wormy/performance/limiter"
	"github.com/jetsetilly/wormy/userinput"
	"github.com/jetsetilly/wormy/worm"
)

// QuitEvent is the curated error returned by a phase when the user has asked
// to quit. Run() returns nil when it sees this error.
const QuitEvent = "playmode: quit"

// PresentFailure is the curated error pattern for a GUI that could not draw a
// frame.
const PresentFailure = "playmode: present: %v"

const (
	// time the game over screen is shown before input is accepted
	gameOverHold = 500 * time.Millisecond

	// interval between input checks on the game over screen
	gameOverPoll = 100 * time.Millisecond
)

// Playmode holds everything needed to run the game.
type Playmode struct {
	gui    gui.GUI
	mux    *userinput.Multiplexer
	world  *worm.World
	layout gui.Layout
	fps    *limiter.Limiter
	clock  limiter.Clock

	// most recent frame of the game. the game over text is drawn on top
	last gui.Frame

	// interrupt signal from the terminal
	intChan chan os.Signal

	// if not empty the state of the game will be written to this file at the
	// end of every game
	MemvizFile string
}

// NewPlaymode is the preferred method of initialisation for the Playmode
// type. The Clock is used by the frame limiter and for the pauses on the game
// over screen.
func NewPlaymode(g gui.GUI, mux *userinput.Multiplexer, world *worm.World, layout gui.Layout, fps int, clock limiter.Clock) (*Playmode, error) {
	lim, err := limiter.NewFPSLimiterWithClock(fps, clock)
	if err != nil {
		return nil, fmt.Errorf("playmode: %w", err)
	}

	return &Playmode{
		gui:     g,
		mux:     mux,
		world:   world,
		layout:  layout,
		fps:     lim,
		clock:   clock,
		intChan: make(chan os.Signal, 1),
	}, nil
}

// Run the game until the user quits. Returns nil if the game ended because
// the user asked it to.
func (pm *Playmode) Run() error {
	signal.Notify(pm.intChan, os.Interrupt)
	defer signal.Stop(pm.intChan)

	err := pm.run()
	if curated.Is(err, QuitEvent) {
		return nil
	}
	return err
}

func (pm *Playmode) run() error {
	if err := pm.startScreen(); err != nil {
		return err
	}

	for {
		if err := pm.playing(); err != nil {
			return err
		}
		if err := pm.gameOver(); err != nil {
			return err
		}
	}
}

// gather input from the GUI and the joystick
func (pm *Playmode) gather() (userinput.Gathered, error) {
	select {
	case <-pm.intChan:
		return userinput.Gathered{}, curated.Errorf(QuitEvent)
	default:
	}

	events := pm.gui.Events()
	sample := pm.mux.Poll()
	g := pm.mux.Gather(events, sample, pm.world.Direction())
	if g.Quit {
		return g, curated.Errorf(QuitEvent)
	}

	return g, nil
}

// discard any pending input
func (pm *Playmode) flush() {
	_ = pm.gui.Events()
	pm.mux.Flush()
}

func (pm *Playmode) startScreen() error {
	pm.flush()
	pm.fps.Reset()

	frame := pm.layout.StartScreen()

	for {
		if err := pm.gui.Present(frame); err != nil {
			return curated.Errorf(PresentFailure, err)
		}

		g, err := pm.gather()
		if err != nil {
			return err
		}
		if g.Start {
			return nil
		}

		pm.fps.Wait()
	}
}

func (pm *Playmode) playing() error {
	pm.world.Reset()
	pm.fps.Reset()

	for {
		g, err := pm.gather()
		if err != nil {
			return err
		}

		if pm.world.Tick(g.Direction, g.Changed) == worm.GameOver {
			return nil
		}

		pm.last = pm.layout.Playing(pm.world.Snapshot())
		if err := pm.gui.Present(pm.last); err != nil {
			return curated.Errorf(PresentFailure, err)
		}

		pm.fps.Wait()
	}
}

func (pm *Playmode) gameOver() error {
	logger.Logf(logger.Allow, "playmode", "game over: score %d (%s)", pm.world.Score(), pm.fps)

	if pm.MemvizFile != "" {
		if err := dumpState(pm.MemvizFile, pm.world.Snapshot()); err != nil {
			logger.Log(logger.Allow, "playmode", err.Error())
		}
	}

	if err := pm.gui.Present(pm.layout.GameOver(pm.last)); err != nil {
		return curated.Errorf(PresentFailure, err)
	}

	pm.clock.Sleep(gameOverHold)
	pm.flush()

	for {
		g, err := pm.gather()
		if err != nil {
			return err
		}
		if g.Start {
			return nil
		}

		pm.clock.Sleep(gameOverPoll)
	}
}
