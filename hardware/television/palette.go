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

package television

import "math"

// Palette is the 128-entry NTSC palette, indexed by the high seven bits of
// the TIA colour value. Entries are packed 0xAARRGGBB with the alpha always
// opaque.
//
// The entries are generated from the YIQ colour space rather than copied
// from a measured table. The TIA colour value encodes hue in its high
// nibble and luminance in the next three bits; hue zero carries no chroma
// and gives the grey ramp. The phase step between adjacent hues is 25.7
// degrees, the figure usually quoted for the NTSC TIA.
var Palette [128]uint32

func init() {
	const phaseStep = 25.7 * math.Pi / 180
	const phaseOrigin = 100.0 * math.Pi / 180
	const saturation = 0.3

	for idx := 0; idx < 128; idx++ {
		hue := idx >> 3
		lum := idx & 0x07

		y := float64(lum) / 7.0 * 0.86

		var i, q float64
		if hue > 0 {
			phi := phaseOrigin - float64(hue-1)*phaseStep
			i = saturation * math.Sin(phi)
			q = saturation * math.Cos(phi)
		}

		// YIQ to RGB conversion, FCC NTSC standard coefficients
		r := clamp(y + 0.956*i + 0.619*q)
		g := clamp(y - 0.272*i - 0.647*q)
		b := clamp(y - 1.106*i + 1.703*q)

		Palette[idx] = 0xff000000 |
			(uint32(r*255) << 16) |
			(uint32(g*255) << 8) |
			uint32(b*255)
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorFromValue maps a TIA colour register value to a packed colour. The
// low bit of the register is not connected to anything.
func ColorFromValue(value uint8) uint32 {
	return Palette[(value>>1)&0x7f]
}
