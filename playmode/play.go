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

// Package playmode runs the emulation for normal play: a cartridge, an SDL
// window and nothing else.
package playmode

import (
	"os"
	"os/signal"

	"github.com/kalfield/beam2600/cartridgeloader"
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/gui/sdlplay"
	"github.com/kalfield/beam2600/hardware"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/performance/limiter"
)

// Play sets the emulation running.
func Play(cartload cartridgeloader.Loader, scaling float32, uncapped bool) error {
	tv := television.NewTelevision()

	scr, err := sdlplay.NewSdlPlay(tv, scaling)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	vcs := hardware.NewVCS(tv)

	if err := cartload.Load(); err != nil {
		return err
	}
	if err := vcs.AttachCartridge(cartload.Data); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(television.FramesPerSecond)
	}

	// redirect interrupt signal so ctrl-c closes the window cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = vcs.Run(func() (bool, error) {
		if lim != nil {
			lim.Wait()
		}

		select {
		case <-intChan:
			return false, nil
		default:
		}

		return scr.Service(), nil
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
