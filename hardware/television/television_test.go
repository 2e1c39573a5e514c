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

package television_test

import (
	"testing"

	"github.com/kalfield/beam2600/hardware/television"
	"github.com/kalfield/beam2600/test"
)

func TestPalette(t *testing.T) {
	// colour zero is black
	test.Equate(t, television.Palette[0], 0xff000000)

	// every entry is opaque
	for _, c := range television.Palette {
		test.Equate(t, c&0xff000000, 0xff000000)
	}

	// the low bit of the colour value is not connected
	test.Equate(t, television.ColorFromValue(0x1e), television.ColorFromValue(0x1f))

	// the grey ramp gets brighter with luminance
	for lum := 1; lum < 8; lum++ {
		prev := television.Palette[lum-1] & 0xff
		cur := television.Palette[lum] & 0xff
		test.Equate(t, cur > prev, true)
	}
}

func TestSignalBounds(t *testing.T) {
	tv := television.NewTelevision()

	test.ExpectedSuccess(t, tv.Signal(0, 0, 0x0e))
	test.ExpectedSuccess(t, tv.Signal(261, 227, 0x0e))
	test.ExpectedFailure(t, tv.Signal(262, 0, 0x0e))
	test.ExpectedFailure(t, tv.Signal(0, 228, 0x0e))
	test.ExpectedFailure(t, tv.Signal(-1, 0, 0x0e))
}

func TestFramebuffer(t *testing.T) {
	tv := television.NewTelevision()

	test.Equate(t, len(tv.Framebuffer()), 262*228)

	// unwritten pixels are black
	test.Equate(t, tv.Pixel(100, 100), 0xff000000)

	test.ExpectedSuccess(t, tv.Signal(100, 100, 0x0e))
	test.Equate(t, tv.Pixel(100, 100), television.ColorFromValue(0x0e))
}

type frameCounter struct {
	frames int
}

func (fc *frameCounter) NewFrame(frame int) error {
	fc.frames = frame
	return nil
}

func TestRenderer(t *testing.T) {
	tv := television.NewTelevision()
	fc := &frameCounter{}
	tv.AddPixelRenderer(fc)

	test.Equate(t, tv.Frame(), 0)
	test.ExpectedSuccess(t, tv.NewFrame())
	test.ExpectedSuccess(t, tv.NewFrame())
	test.Equate(t, tv.Frame(), 2)
	test.Equate(t, fc.frames, 2)
}
