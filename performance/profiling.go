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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/kalfield/beam2600/curated"
)

func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(profile bool, outFile string) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		f.Close()
	}

	return nil
}
