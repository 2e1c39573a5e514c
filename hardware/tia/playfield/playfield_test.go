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

package playfield_test

import (
	"testing"

	"github.com/kalfield/beam2600/hardware/tia/playfield"
	"github.com/kalfield/beam2600/test"
)

func TestPinOrder(t *testing.T) {
	pf := playfield.NewPlayfield()

	// PF0: bit 4 is dot 0, bit 7 is dot 3
	pf.SetPF0(0x10)
	test.Equate(t, pf.Dot(0), true)
	test.Equate(t, pf.Dot(3), false)
	pf.SetPF0(0x80)
	test.Equate(t, pf.Dot(0), false)
	test.Equate(t, pf.Dot(3), true)

	// the low nibble of PF0 is not connected
	pf.SetPF0(0x0f)
	test.Equate(t, pf.PF0, 0x00)
	for i := 0; i < 4; i++ {
		test.Equate(t, pf.Dot(i), false)
	}

	// PF1: bit 7 is dot 4, bit 0 is dot 11
	pf.SetPF1(0x80)
	test.Equate(t, pf.Dot(4), true)
	test.Equate(t, pf.Dot(11), false)
	pf.SetPF1(0x01)
	test.Equate(t, pf.Dot(4), false)
	test.Equate(t, pf.Dot(11), true)

	// PF2: bit 0 is dot 12, bit 7 is dot 19
	pf.SetPF2(0x01)
	test.Equate(t, pf.Dot(12), true)
	test.Equate(t, pf.Dot(19), false)
	pf.SetPF2(0x80)
	test.Equate(t, pf.Dot(12), false)
	test.Equate(t, pf.Dot(19), true)
}

func TestRightHalf(t *testing.T) {
	pf := playfield.NewPlayfield()
	pf.SetPF0(0x10) // dot 0 only

	// repeated: dot 20 copies dot 0
	pf.SetReflected(false)
	test.Equate(t, pf.Dot(20), true)
	test.Equate(t, pf.Dot(39), false)

	// reflected: dot 39 mirrors dot 0
	pf.SetReflected(true)
	test.Equate(t, pf.Dot(20), false)
	test.Equate(t, pf.Dot(39), true)
}
