// This file is part of Beam2600.
//
// Beam2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beam2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beam2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/kalfield/beam2600/cartridgeloader"
	"github.com/kalfield/beam2600/disassembly"
	"github.com/kalfield/beam2600/hardware"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/logger"
	"github.com/kalfield/beam2600/modalflag"
	"github.com/kalfield/beam2600/performance"
	"github.com/kalfield/beam2600/playmode"
	"github.com/kalfield/beam2600/statsview"
	"github.com/kalfield/beam2600/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		vers, _ := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", 3.0, "television scaling")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the NTSC refresh rate")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch statistics server")
	viz := md.AddString("viz", "", "write a graph of the console structure to file (dot format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available. compile with statsview build tag.")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		if *viz != "" {
			if err := writeStructureGraph(cartload, *viz); err != nil {
				return err
			}
		}

		return playmode.Play(cartload, float32(*scaling), !*fpsCap)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		dsm, err := disassembly.FromCartridge(cartload)
		if err != nil {
			return err
		}
		return dsm.Write(os.Stdout)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddBool("profile", false, "perform cpu and memory profiling")
	uncapped := md.AddBool("uncapped", true, "run as fast as possible")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return performance.Check(os.Stdout, *profile, cartload, *uncapped, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// writeStructureGraph attaches the cartridge to a fresh console and maps
// the resulting object graph to a graphviz dot file.
func writeStructureGraph(cartload cartridgeloader.Loader, filename string) error {
	if err := cartload.Load(); err != nil {
		return err
	}

	vcs := hardware.NewVCS(television.NewTelevision())
	if err := vcs.AttachCartridge(cartload.Data); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, vcs)

	return nil
}
