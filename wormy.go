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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/wormy/config"
	"github.com/jetsetilly/wormy/gui"
	"github.com/jetsetilly/wormy/gui/sdlplay"
	"github.com/jetsetilly/wormy/gui/termplay"
	"github.com/jetsetilly/wormy/hardware/i2c"
	"github.com/jetsetilly/wormy/hardware/joystick"
	"github.com/jetsetilly/wormy/logger"
	"github.com/jetsetilly/wormy/modalflag"
	"github.com/jetsetilly/wormy/monitor"
	"github.com/jetsetilly/wormy/paths"
	"github.com/jetsetilly/wormy/performance/limiter"
	"github.com/jetsetilly/wormy/playmode"
	"github.com/jetsetilly/wormy/random"
	"github.com/jetsetilly/wormy/statsview"
	"github.com/jetsetilly/wormy/userinput"
	"github.com/jetsetilly/wormy/version"
	"github.com/jetsetilly/wormy/worm"
)

// #mainthread
func init() {
	// SDL window events must be handled on the thread that created the window
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "JOYSTICK", "CONFIG", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "JOYSTICK":
		err = stick(md)
	case "CONFIG":
		err = showConfig(md, os.Stdout)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// command line flags that override values in the configuration file
type overrides struct {
	fps      *int
	bus      *string
	address  *uint
	register *uint
	nostick  *bool
}

func addOverrides(md *modalflag.Modes) overrides {
	def := config.Default()
	return overrides{
		fps:      md.AddInt("fps", def.FPS, "frames per second"),
		bus:      md.AddString("i2c", def.Joystick.Bus, "name of I2C bus (empty for the first bus found)"),
		address:  md.AddUint("addr", uint(def.Joystick.Address), "I2C address of joystick"),
		register: md.AddUint("reg", uint(def.Joystick.Register), "first register of the joystick reading"),
		nostick:  md.AddBool("nostick", def.Joystick.Disabled, "play with the keyboard only"),
	}
}

// apply flags that were set on the command line to the configuration. flags
// that were not set leave the value from the configuration file untouched
func (o overrides) apply(md *modalflag.Modes, cfg *config.Config) error {
	md.Visit(func(name string) {
		switch name {
		case "fps":
			cfg.FPS = *o.fps
		case "i2c":
			cfg.Joystick.Bus = *o.bus
		case "addr":
			cfg.Joystick.Address = uint16(*o.address)
		case "reg":
			cfg.Joystick.Register = uint8(*o.register)
		case "nostick":
			cfg.Joystick.Disabled = *o.nostick
		}
	})

	if *o.address > i2c.MaxAddress {
		return fmt.Errorf("address out of range (%#x)", *o.address)
	}
	if *o.register > 0xff {
		return fmt.Errorf("register out of range (%#x)", *o.register)
	}

	return cfg.Validate()
}

// load the named configuration file. if no file is named then the file in the
// resource directory is used, if there is one. asset filenames are resolved
// against the resource directory
func loadConfig(filename string) (config.Config, error) {
	if filename == "" {
		filename = paths.DefaultConfig()
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return config.Config{}, err
	}

	cfg.Assets.Font = paths.Find(cfg.Assets.Font)
	cfg.Assets.Sprite = paths.Find(cfg.Assets.Sprite)

	return cfg, nil
}

// open the bus and the joystick on it. the returned bus should be closed by
// the caller
func openJoystick(cfg config.Joystick) (*i2c.HostBus, *joystick.Reader, error) {
	bus, err := i2c.OpenHostBus(cfg.Bus)
	if err != nil {
		return nil, nil, err
	}

	rdr, err := joystick.NewReader(bus, cfg.Address, cfg.Register)
	if err != nil {
		_ = bus.Close()
		return nil, nil, err
	}

	return bus, rdr, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	cfgFile := md.AddString("config", "", fmt.Sprintf("configuration file (default %s)", paths.ResourcePath(paths.ConfigFile)))
	term := md.AddBool("term", false, "play in the terminal")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write graphviz of game state to file at game over")
	ovr := addOverrides(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	err = ovr.apply(md, &cfg)
	if err != nil {
		return err
	}

	// the game carries on without a joystick if one can't be found
	var mux *userinput.Multiplexer
	if cfg.Joystick.Disabled {
		mux = userinput.NewMultiplexer(nil)
	} else {
		bus, rdr, err := openJoystick(cfg.Joystick)
		if err != nil {
			logger.Logf(logger.Allow, "wormy", "keyboard only: %v", err)
			mux = userinput.NewMultiplexer(nil)
		} else {
			defer bus.Close()
			logger.Logf(logger.Allow, "wormy", "joystick: %s on %s", rdr, bus)
			mux = userinput.NewMultiplexer(rdr)
		}
	}

	world, err := worm.NewWorld(cfg.Display.GridWidth(), cfg.Display.GridHeight(), random.NewRandom())
	if err != nil {
		return err
	}

	scr, err := createGUI(*term, cfg)
	if err != nil {
		return err
	}
	defer scr.Destroy(os.Stderr)

	pm, err := playmode.NewPlaymode(scr, mux, world, gui.NewLayout(cfg.Display), cfg.FPS, limiter.RealClock)
	if err != nil {
		return err
	}
	pm.MemvizFile = *memvizFile

	return pm.Run()
}

func createGUI(term bool, cfg config.Config) (gui.GUI, error) {
	if term {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		trm, err := termplay.NewTermPlay(screen)
		if err != nil {
			return nil, err
		}
		return trm, nil
	}

	scr, err := sdlplay.NewSdlPlay(cfg.Display, cfg.Assets)
	if err != nil {
		return nil, err
	}
	return scr, nil
}

func stick(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("Prints joystick readings until '%c' is pressed.", monitor.QuitKey))

	cfgFile := md.AddString("config", "", fmt.Sprintf("configuration file (default %s)", paths.ResourcePath(paths.ConfigFile)))
	ovr := addOverrides(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	err = ovr.apply(md, &cfg)
	if err != nil {
		return err
	}

	bus, rdr, err := openJoystick(cfg.Joystick)
	if err != nil {
		return err
	}
	defer bus.Close()

	return runMonitor(rdr, os.Stdin, os.Stdout)
}

func runMonitor(rdr monitor.Stick, input *os.File, output io.Writer) error {
	mon, err := monitor.NewMonitor(rdr, output, limiter.RealClock)
	if err != nil {
		return err
	}

	// single key presses without waiting for the return key
	trm, err := monitor.NewTerminal(input)
	if err != nil {
		return err
	}
	err = trm.CBreakMode()
	if err != nil {
		return err
	}
	defer trm.CanonicalMode()

	fmt.Fprintf(output, "%s reading joystick. press '%c' to quit\n", version.ApplicationName, monitor.QuitKey)
	mon.Run(monitor.Keys(input))

	return nil
}

func showConfig(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Prints the configuration as YAML. The output can be used as a configuration file.")

	cfgFile := md.AddString("config", "", fmt.Sprintf("configuration file (default %s)", paths.ResourcePath(paths.ConfigFile)))
	ovr := addOverrides(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	err = ovr.apply(md, &cfg)
	if err != nil {
		return err
	}

	b, err := cfg.Write()
	if err != nil {
		return err
	}
	_, err = output.Write(b)

	return err
}
