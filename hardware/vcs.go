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

package hardware

import (
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware/cpu"
	"github.com/kalfield/beam2600/hardware/memory"
	"github.com/kalfield/beam2600/hardware/memory/cartridge"
	"github.com/kalfield/beam2600/hardware/memory/addresses"
	"github.com/kalfield/beam2600/hardware/riot"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/hardware/tia"
)

// NoVSYNC is returned by StepFrame when the running program shows no sign
// of ever synchronising the screen.
const NoVSYNC = "vcs: no VSYNC in %d scanlines"

// VCS is the main container for the emulated components of the console.
type VCS struct {
	CPU  *cpu.CPU
	Mem  *memory.VCSMemory
	TIA  *tia.TIA
	RIOT *riot.RIOT

	// the tv is not part of the console but is attached to it
	TV *television.Television
}

// NewVCS creates a new VCS and everything associated with the hardware. The
// TIA is the source of time for every other component so it is the TIA that
// the other components are plumbed into.
func NewVCS(tv *television.Television) *VCS {
	vcs := &VCS{TV: tv}

	vcs.RIOT = riot.NewRIOT()
	vcs.TIA = tia.NewTIA(tv)

	stack := cpu.NewStack()
	cart := cartridge.NewCartridge()
	vcs.Mem = memory.NewVCSMemory(vcs.TIA, vcs.RIOT, stack, cart)
	vcs.CPU = cpu.NewCPU(vcs.Mem)

	vcs.TIA.Plumb(vcs.CPU, vcs.RIOT)

	return vcs
}

// AttachCartridge inserts cartridge data into the console and resets it.
func (vcs *VCS) AttachCartridge(data []uint8) error {
	if err := vcs.Mem.Cart.Attach(data); err != nil {
		return err
	}
	return vcs.Reset()
}

// Reset emulates the reset switch on the console panel. The CPU begins at
// the address in the reset vector.
func (vcs *VCS) Reset() error {
	vcs.CPU.Reset()
	return vcs.CPU.LoadPCIndirect(addresses.Reset)
}

// Step the console by one oscillator tick.
func (vcs *VCS) Step() error {
	return vcs.TIA.Step()
}

// StepFrame runs the console up to the next frame boundary, as announced by
// a VSYNC rising edge. A program that never strobes VSYNC never finishes a
// frame; the frameout limit turns that into an error rather than a hang.
func (vcs *VCS) StepFrame() error {
	startFrame := vcs.TIA.Frame()

	// generous allowance of two full frame's worth of ticks
	limit := 2 * television.ScanlinesTotal * television.HorizClksScanline

	for i := 0; i < limit; i++ {
		if err := vcs.TIA.Step(); err != nil {
			return err
		}
		if vcs.TIA.Frame() != startFrame {
			return nil
		}
	}

	return curated.Errorf(NoVSYNC, 2*television.ScanlinesTotal)
}

// Run the console as quickly as possible. The continueCheck callback is
// polled once per frame; the emulation stops when it returns false or an
// error.
func (vcs *VCS) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := vcs.StepFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
