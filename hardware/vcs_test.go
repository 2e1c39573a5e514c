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

package hardware_test

import (
	"testing"

	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware"
	"github.com/kalfield/beam2600/hardware/memory/cartridge"
	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/test"
)

// assemble builds a 4k cartridge image from code originated at $F000, with
// the reset vector pointing at the first instruction.
func assemble(code []uint8) []uint8 {
	rom := make([]uint8, cartridge.Size)
	copy(rom, code)
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0
	return rom
}

func newTestVCS(t *testing.T, code []uint8) *hardware.VCS {
	t.Helper()
	vcs := hardware.NewVCS(television.NewTelevision())
	test.ExpectedSuccess(t, vcs.AttachCartridge(assemble(code)))
	return vcs
}

func TestResetVector(t *testing.T) {
	vcs := newTestVCS(t, []uint8{
		0x4c, 0x00, 0xf0, // JMP $F000
	})
	test.Equate(t, vcs.CPU.PC.Address(), uint16(0xf000))
}

func TestStepFrame(t *testing.T) {
	// strobe VSYNC as fast as possible
	vcs := newTestVCS(t, []uint8{
		0xa9, 0x02, // LDA #$02
		0x85, 0x00, // STA VSYNC
		0xa9, 0x00, // LDA #$00
		0x85, 0x00, // STA VSYNC
		0x4c, 0x00, 0xf0, // JMP $F000
	})

	test.ExpectedSuccess(t, vcs.StepFrame())
	test.Equate(t, vcs.TIA.Frame(), 1)
	test.ExpectedSuccess(t, vcs.StepFrame())
	test.ExpectedSuccess(t, vcs.StepFrame())
	test.Equate(t, vcs.TIA.Frame(), 3)
}

func TestStepFrameWithoutVSYNC(t *testing.T) {
	vcs := newTestVCS(t, []uint8{
		0x4c, 0x00, 0xf0, // JMP $F000
	})

	err := vcs.StepFrame()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, hardware.NoVSYNC), true)
}

func TestRunCallback(t *testing.T) {
	vcs := newTestVCS(t, []uint8{
		0xa9, 0x02, // LDA #$02
		0x85, 0x00, // STA VSYNC
		0xa9, 0x00, // LDA #$00
		0x85, 0x00, // STA VSYNC
		0x4c, 0x00, 0xf0, // JMP $F000
	})

	frames := 0
	err := vcs.Run(func() (bool, error) {
		frames++
		return frames < 5, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, frames, 5)
	test.Equate(t, vcs.TIA.Frame(), 5)
}

func TestTimerThroughBus(t *testing.T) {
	// arm TIM64T and spin
	vcs := newTestVCS(t, []uint8{
		0xa9, 0x0a, // LDA #$0A
		0x8d, 0x96, 0x02, // STA TIM64T
		0x4c, 0x05, 0xf0, // JMP $F005
	})

	// the STA completes inside the first dozen CPU cycles
	for i := 0; i < 3*20; i++ {
		test.ExpectedSuccess(t, vcs.Step())
	}
	test.Equate(t, vcs.RIOT.Timer.Peek(), uint8(0x09))
	test.Equate(t, vcs.RIOT.Timer.Expired(), false)

	// 10 intervals of 64 CPU cycles is ample time to expire
	for i := 0; i < 3*64*11; i++ {
		test.ExpectedSuccess(t, vcs.Step())
	}
	test.Equate(t, vcs.RIOT.Timer.Expired(), true)
}

func TestKernelRendersBackground(t *testing.T) {
	// a minimal kernel: start a frame, set the background colour, wait a
	// scanline, repeat
	vcs := newTestVCS(t, []uint8{
		0xa9, 0x02, // LDA #$02
		0x85, 0x00, // STA VSYNC
		0xa9, 0x00, // LDA #$00
		0x85, 0x00, // STA VSYNC
		0x85, 0x01, // STA VBLANK
		0xa9, 0x1e, // LDA #$1E
		0x85, 0x09, // STA COLUBK
		0x85, 0x02, // STA WSYNC
		0x4c, 0x00, 0xf0, // JMP $F000
	})

	// run past the first frame so rendering is underway
	test.ExpectedSuccess(t, vcs.StepFrame())
	test.ExpectedSuccess(t, vcs.StepFrame())

	pix := vcs.TV.Pixel(0, television.HorizClksHBlank+50)
	test.Equate(t, pix, television.ColorFromValue(0x1e))
}

func TestIllegalTIAWriteStopsEmulation(t *testing.T) {
	// GRP0 is not an implemented register
	vcs := newTestVCS(t, []uint8{
		0xa9, 0xff, // LDA #$FF
		0x85, 0x1b, // STA GRP0
		0x4c, 0x00, 0xf0, // JMP $F000
	})

	var err error
	for i := 0; i < 100; i++ {
		err = vcs.Step()
		if err != nil {
			break
		}
	}
	test.ExpectedFailure(t, err)
}
