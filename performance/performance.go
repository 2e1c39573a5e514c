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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/kalfield/beam2600/cartridgeloader"
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/performance/limiter"
)

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu and
// memory profile if the profile argument is true.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, uncapped bool, runTime string) error {
	tv := television.NewTelevision()
	vcs := hardware.NewVCS(tv)

	if err := cartload.Load(); err != nil {
		return err
	}
	if err := vcs.AttachCartridge(cartload.Data); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(television.FramesPerSecond)
	}

	// get starting frame number (should be 0)
	startFrame := tv.Frame()

	err = cpuProfile(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		// force a two second leadtime to allow framerate to settle down and
		// then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				startFrame = tv.Frame()
				time.AfterFunc(duration, func() {
					timesUp <- true
				})
			})
		}()

		// run until the timer expires
		return vcs.Run(func() (bool, error) {
			if lim != nil {
				lim.Wait()
			}
			select {
			case <-timesUp:
				return false, nil
			default:
				return true, nil
			}
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := tv.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
