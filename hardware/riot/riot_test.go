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

package riot_test

import (
	"testing"

	"github.com/kalfield/beam2600/hardware/memory/addresses"
	"github.com/kalfield/beam2600/hardware/riot"
	"github.com/kalfield/beam2600/test"
)

func TestRAM(t *testing.T) {
	r := riot.NewRIOT()

	test.ExpectedSuccess(t, r.Write(0x0080, 0x12))
	test.ExpectedSuccess(t, r.Write(0x00ff, 0x34))

	v, err := r.Read(0x0080)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x12)

	v, _ = r.Read(0x00ff)
	test.Equate(t, v, 0x34)
}

func TestPorts(t *testing.T) {
	r := riot.NewRIOT()

	// no input is connected: sticks centred, buttons and switches released
	v, _ := r.Read(addresses.SWCHA)
	test.Equate(t, v, 0xff)
	v, _ = r.Read(addresses.SWCHB)
	test.Equate(t, v, 0x3f)

	// port reads are side-effect free
	v, _ = r.Read(addresses.SWCHA)
	test.Equate(t, v, 0xff)
	v, _ = r.Read(addresses.SWCHB)
	test.Equate(t, v, 0x3f)
}

func TestTimerRegisters(t *testing.T) {
	r := riot.NewRIOT()

	test.ExpectedSuccess(t, r.Write(addresses.TIM8T, 0x03))
	r.Step()
	v, _ := r.Read(addresses.INTIM)
	test.Equate(t, v, 0x02)

	// TIMINT is clear until the timer expires
	v, _ = r.Read(addresses.TIMINT)
	test.Equate(t, v, 0x00)
}

func TestTimerExpiryFlag(t *testing.T) {
	r := riot.NewRIOT()

	test.ExpectedSuccess(t, r.Write(addresses.TIM1T, 0x01))
	for i := 0; i < 3; i++ {
		r.Step()
	}

	test.Equate(t, r.Timer.Peek(), 0xff)
	v, _ := r.Read(addresses.TIMINT)
	test.Equate(t, v, 0x80)
}
