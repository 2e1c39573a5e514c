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

// Package tia emulates the TIA, the custom video chip of the Atari VCS.
//
// The TIA owns the clock. The console's oscillator drives the TIA directly
// and the TIA divides it by three for the CPU, which makes this package the
// scheduler for the whole emulation: Step() is one oscillator tick, and on
// every third tick the CPU and then the RIOT advance by one cycle of their
// own. Nothing else in the emulation decides when time passes.
//
// Video is the playfield against a background, the registers the original
// two-chip 1977 layout dedicates to them, and the WSYNC/VSYNC/VBLANK frame
// protocol. The sprite circuits (players, missiles, ball) and the audio
// circuits are not implemented; a write to one of their registers is a
// fatal error rather than a silent wrong picture.
package tia

import (
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware/cpu"
	"github.com/kalfield/beam2600/hardware/memory/addresses"
	"github.com/kalfield/beam2600/hardware/riot"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/hardware/tia/playfield"
	"github.com/kalfield/beam2600/logger"
)

// sentinal error messages returned by the TIA.
const (
	UnimplementedRegister = "tia: unimplemented register write (%s = %#02x)"
	NotPlumbed            = "tia: stepped before the CPU and RIOT were plumbed in"
)

// each playfield dot is four colour clocks wide
const clocksPerDot = 4

// TIA implements the custom video chip of the Atari VCS.
type TIA struct {
	tv *television.Television

	// plumbed in after construction, breaking the circular dependency
	// between TIA, bus and CPU
	mc   *cpu.CPU
	riot *riot.RIOT

	Playfield *playfield.Playfield

	// position of the beam
	clock    int // colour clock, 0 to 227
	scanline int // 0 to 261

	// number of oscillator ticks out of three until the next CPU cycle
	div3 int

	// frame counting begins with the first VSYNC rising edge; nothing is
	// rendered before then
	frameNum     int
	frameStarted bool

	// register state
	vsync      bool
	vsyncLatch bool // rising edge seen this tick
	vblank     bool
	wsync      bool
	colupf     uint8
	colubk     uint8
}

// NewTIA is the preferred method of initialisation for the TIA type.
func NewTIA(tv *television.Television) *TIA {
	return &TIA{
		tv:        tv,
		Playfield: playfield.NewPlayfield(),
	}
}

// Plumb the CPU and RIOT into the TIA. The TIA is constructed before
// either; Step() is invalid until this has been called.
func (t *TIA) Plumb(mc *cpu.CPU, riot *riot.RIOT) {
	t.mc = mc
	t.riot = riot
}

// Clock returns the colour clock position of the beam.
func (t *TIA) Clock() int {
	return t.clock
}

// Scanline returns the scanline position of the beam.
func (t *TIA) Scanline() int {
	return t.scanline
}

// Frame returns the number of VSYNC rising edges seen.
func (t *TIA) Frame() int {
	return t.frameNum
}

// Step the TIA by one oscillator tick. One tick in three also steps the
// CPU and the RIOT, in that order.
func (t *TIA) Step() error {
	if t.mc == nil {
		return curated.Errorf(NotPlumbed)
	}

	// render the current beam position
	if t.frameStarted && !t.vblank && t.clock >= television.HorizClksHBlank {
		dot := (t.clock - television.HorizClksHBlank) / clocksPerDot
		col := t.colubk
		if t.Playfield.Dot(dot) {
			col = t.colupf
		}
		if err := t.tv.Signal(t.scanline, t.clock, col); err != nil {
			return err
		}
	}

	// the RDY pin follows the WSYNC latch
	t.mc.RdyFlg = !t.wsync

	if t.div3 == 0 {
		if err := t.mc.Cycle(); err != nil {
			return err
		}
		t.riot.Step()
	}
	t.div3++
	if t.div3 == 3 {
		t.div3 = 0
	}

	// advance the beam
	t.clock++
	if t.clock == television.HorizClksScanline {
		t.clock = 0

		// a new scanline always releases the CPU
		t.wsync = false

		t.scanline++
		if t.scanline == television.ScanlinesTotal {
			t.scanline = 0
		}
	}

	// a VSYNC rising edge earlier in this tick starts a new frame
	if t.vsyncLatch {
		t.vsyncLatch = false
		t.clock = 0
		t.scanline = 0
		t.frameNum++
		t.frameStarted = true
		if err := t.tv.NewFrame(); err != nil {
			return err
		}
	}

	return nil
}

// Read a TIA read register. The collision and input registers all read as
// zero: no sprites means no collisions, and no input is connected. Reads
// are side-effect free.
func (t *TIA) Read(address uint16) (uint8, error) {
	// the read decode only sees four address bits
	address &= 0x000f
	if _, ok := addresses.TIAReadSymbols[address]; !ok {
		logger.Logf("tia", "reading unhandled register (%#04x)", address)
	}
	return 0x00, nil
}

// Write a TIA write register.
func (t *TIA) Write(address uint16, data uint8) error {
	switch address {
	case addresses.VSYNC:
		v := data&0x02 == 0x02
		if v && !t.vsync {
			t.vsyncLatch = true
		}
		t.vsync = v
	case addresses.VBLANK:
		t.vblank = data&0x02 == 0x02
	case addresses.WSYNC:
		t.wsync = true
	case addresses.COLUPF:
		t.colupf = data & 0xfe
	case addresses.COLUBK:
		t.colubk = data & 0xfe
	case addresses.CTRLPF:
		t.Playfield.SetReflected(data&0x01 == 0x01)
	case addresses.PF0:
		t.Playfield.SetPF0(data)
	case addresses.PF1:
		t.Playfield.SetPF1(data)
	case addresses.PF2:
		t.Playfield.SetPF2(data)
	default:
		name, ok := addresses.TIAWriteSymbols[address]
		if !ok {
			logger.Logf("tia", "writing unhandled register (%#04x = %#02x)", address, data)
			return nil
		}
		return curated.Errorf(UnimplementedRegister, name, data)
	}
	return nil
}
