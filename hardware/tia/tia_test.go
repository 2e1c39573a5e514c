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

package tia_test

import (
	"testing"

	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware/cpu"
	"github.com/kalfield/beam2600/hardware/memory/addresses"
	"github.com/kalfield/beam2600/hardware/riot"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/hardware/tia"
	"github.com/kalfield/beam2600/test"
)

// testMem keeps the CPU busy with a two-instruction loop while the tests
// drive the TIA directly.
type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	mem := &testMem{
		internal: make([]uint8, 0x10000),
	}

	// JMP $F000
	mem.internal[0xf000] = 0x4c
	mem.internal[0xf001] = 0x00
	mem.internal[0xf002] = 0xf0

	// reset vector
	mem.internal[0xfffc] = 0x00
	mem.internal[0xfffd] = 0xf0

	return mem
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func newTestTIA(t *testing.T) (*tia.TIA, *cpu.CPU, *television.Television) {
	t.Helper()

	tv := television.NewTelevision()
	vid := tia.NewTIA(tv)
	mc := cpu.NewCPU(newTestMem())
	vid.Plumb(mc, riot.NewRIOT())

	mc.Reset()
	test.ExpectedSuccess(t, mc.LoadPCIndirect(addresses.Reset))

	return vid, mc, tv
}

func stepTIA(t *testing.T, vid *tia.TIA, ticks int) {
	t.Helper()
	for i := 0; i < ticks; i++ {
		if err := vid.Step(); err != nil {
			t.Fatalf("unexpected error during TIA step: %v", err)
		}
	}
}

func TestNotPlumbed(t *testing.T) {
	vid := tia.NewTIA(television.NewTelevision())
	err := vid.Step()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, tia.NotPlumbed), true)
}

func TestBeamPosition(t *testing.T) {
	vid, _, _ := newTestTIA(t)

	test.Equate(t, vid.Clock(), 0)
	test.Equate(t, vid.Scanline(), 0)

	stepTIA(t, vid, 10)
	test.Equate(t, vid.Clock(), 10)
	test.Equate(t, vid.Scanline(), 0)

	// one full scanline from the start
	stepTIA(t, vid, television.HorizClksScanline-10)
	test.Equate(t, vid.Clock(), 0)
	test.Equate(t, vid.Scanline(), 1)

	// scanline counter wraps without a frame change
	stepTIA(t, vid, television.HorizClksScanline*(television.ScanlinesTotal-1))
	test.Equate(t, vid.Scanline(), 0)
	test.Equate(t, vid.Frame(), 0)
}

func TestVSYNCStartsFrame(t *testing.T) {
	vid, _, tv := newTestTIA(t)

	// no frame until the program says so
	stepTIA(t, vid, 1000)
	test.Equate(t, vid.Frame(), 0)
	test.Equate(t, tv.Frame(), 0)

	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x02))
	stepTIA(t, vid, 1)
	test.Equate(t, vid.Frame(), 1)
	test.Equate(t, tv.Frame(), 1)
	test.Equate(t, vid.Clock(), 0)
	test.Equate(t, vid.Scanline(), 0)

	// holding VSYNC high is not another edge
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x02))
	stepTIA(t, vid, 10)
	test.Equate(t, vid.Frame(), 1)

	// a fresh rising edge is
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x00))
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x02))
	stepTIA(t, vid, 1)
	test.Equate(t, vid.Frame(), 2)
}

func TestFramePeriod(t *testing.T) {
	vid, _, _ := newTestTIA(t)

	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x02))
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x00))
	stepTIA(t, vid, 1)
	test.Equate(t, vid.Frame(), 1)

	// three CPU-cycles worth of ticks for every colour clock of the frame
	// returns the beam to the origin with no new frame having started
	stepTIA(t, vid, television.HorizClksScanline*television.ScanlinesTotal*3)
	test.Equate(t, vid.Clock(), 0)
	test.Equate(t, vid.Scanline(), 0)
	test.Equate(t, vid.Frame(), 1)
}

func TestWSYNC(t *testing.T) {
	vid, mc, _ := newTestTIA(t)

	stepTIA(t, vid, 30)
	test.Equate(t, mc.RdyFlg, true)

	test.ExpectedSuccess(t, vid.Write(addresses.WSYNC, 0x00))
	stepTIA(t, vid, 1)
	test.Equate(t, mc.RdyFlg, false)

	// the CPU stays halted until the end of the scanline
	stepTIA(t, vid, television.HorizClksScanline-32)
	test.Equate(t, vid.Clock(), television.HorizClksScanline-1)
	test.Equate(t, mc.RdyFlg, false)

	stepTIA(t, vid, 1)
	test.Equate(t, vid.Clock(), 0)
	test.Equate(t, vid.Scanline(), 1)
	stepTIA(t, vid, 1)
	test.Equate(t, mc.RdyFlg, true)
}

func TestPlayfieldRendering(t *testing.T) {
	vid, _, tv := newTestTIA(t)

	const (
		bk = 0x02
		pf = 0x0e
	)

	test.ExpectedSuccess(t, vid.Write(addresses.COLUBK, bk))
	test.ExpectedSuccess(t, vid.Write(addresses.COLUPF, pf))

	// dots 0 to 3 of the left half
	test.ExpectedSuccess(t, vid.Write(addresses.PF0, 0xf0))

	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x02))
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x00))
	stepTIA(t, vid, 1)

	// a full frame of rendering
	stepTIA(t, vid, television.HorizClksScanline*television.ScanlinesTotal)

	// each playfield dot is four colour clocks wide
	hb := television.HorizClksHBlank
	test.Equate(t, tv.Pixel(100, hb), television.ColorFromValue(pf))
	test.Equate(t, tv.Pixel(100, hb+15), television.ColorFromValue(pf))
	test.Equate(t, tv.Pixel(100, hb+16), television.ColorFromValue(bk))
	test.Equate(t, tv.Pixel(100, television.HorizClksScanline-1), television.ColorFromValue(bk))

	// the repeated right half has the same dots on
	test.Equate(t, tv.Pixel(100, hb+80), television.ColorFromValue(pf))
	test.Equate(t, tv.Pixel(100, hb+96), television.ColorFromValue(bk))
}

func TestVBLANKBlanks(t *testing.T) {
	vid, _, tv := newTestTIA(t)

	test.ExpectedSuccess(t, vid.Write(addresses.COLUBK, 0x0e))
	test.ExpectedSuccess(t, vid.Write(addresses.VBLANK, 0x02))
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x02))
	test.ExpectedSuccess(t, vid.Write(addresses.VSYNC, 0x00))
	stepTIA(t, vid, 1)

	stepTIA(t, vid, television.HorizClksScanline*2)

	// nothing reached the screen
	test.Equate(t, tv.Pixel(0, television.HorizClksHBlank+10), television.ColorFromValue(0x00))

	// ending vertical blank lets the beam through
	test.ExpectedSuccess(t, vid.Write(addresses.VBLANK, 0x00))
	stepTIA(t, vid, television.HorizClksScanline)
	test.Equate(t, tv.Pixel(2, television.HorizClksHBlank+10), television.ColorFromValue(0x0e))
}

func TestUnimplementedRegister(t *testing.T) {
	vid, _, _ := newTestTIA(t)

	err := vid.Write(addresses.GRP0, 0xff)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, tia.UnimplementedRegister), true)

	err = vid.Write(addresses.AUDV0, 0x04)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, tia.UnimplementedRegister), true)
}

func TestReadRegisters(t *testing.T) {
	vid, _, _ := newTestTIA(t)

	// collisions and inputs all read as zero, with no side effects
	for a := uint16(0x00); a <= 0x0d; a++ {
		v, err := vid.Read(a)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, uint8(0x00))
	}
}
