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

package cartridge_test

import (
	"testing"

	"github.com/kalfield/beam2600/hardware/memory/cartridge"
	"github.com/kalfield/beam2600/test"
)

func TestMirroring(t *testing.T) {
	cart := cartridge.NewCartridge()

	// 2k ROM appears twice in the 4k window
	rom := make([]uint8, 2048)
	rom[0] = 0xde
	rom[2047] = 0xad
	test.ExpectedSuccess(t, cart.Attach(rom))

	v, err := cart.Read(0xf000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xde)

	v, _ = cart.Read(0xf800)
	test.Equate(t, v, 0xde)

	v, _ = cart.Read(0xf7ff)
	test.Equate(t, v, 0xad)

	v, _ = cart.Read(0xffff)
	test.Equate(t, v, 0xad)
}

func TestAddressMasking(t *testing.T) {
	cart := cartridge.NewCartridge()

	rom := make([]uint8, 4096)
	rom[0x0abc] = 0x42
	test.ExpectedSuccess(t, cart.Attach(rom))

	// any address with the same low twelve bits reads the same byte
	v, _ := cart.Read(0xfabc)
	test.Equate(t, v, 0x42)
	v, _ = cart.Read(0x0abc)
	test.Equate(t, v, 0x42)
}

func TestOversizeROM(t *testing.T) {
	cart := cartridge.NewCartridge()
	rom := make([]uint8, 8192)
	test.ExpectedFailure(t, cart.Attach(rom))
}

func TestWriteIgnored(t *testing.T) {
	cart := cartridge.NewCartridge()

	rom := make([]uint8, 4096)
	rom[0] = 0x99
	test.ExpectedSuccess(t, cart.Attach(rom))

	test.ExpectedSuccess(t, cart.Write(0xf000, 0x00))
	v, _ := cart.Read(0xf000)
	test.Equate(t, v, 0x99)
}
