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

package disassembly_test

import (
	"testing"

	"github.com/kalfield/beam2600/disassembly"
	"github.com/kalfield/beam2600/hardware/memory/cartridge"
	"github.com/kalfield/beam2600/test"
)

func disassemble(t *testing.T, code []uint8) *disassembly.Disassembly {
	t.Helper()

	rom := make([]uint8, cartridge.Size)
	copy(rom, code)
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0

	cart := cartridge.NewCartridge()
	test.ExpectedSuccess(t, cart.Attach(rom))

	dsm, err := disassembly.FromMemory(cart)
	test.ExpectedSuccess(t, err)

	return dsm
}

func TestDecode(t *testing.T) {
	dsm := disassemble(t, []uint8{
		0xa9, 0x02, // LDA #$02
		0x85, 0x00, // STA VSYNC
		0xad, 0x84, 0x02, // LDA INTIM
		0x4c, 0x00, 0xf0, // JMP $F000
	})

	test.Equate(t, dsm.Entries[0].String(), "0xf000 LDA #$02")
	test.Equate(t, dsm.Entries[1].String(), "0xf002 STA VSYNC")
	test.Equate(t, dsm.Entries[2].String(), "0xf004 LDA INTIM")
	test.Equate(t, dsm.Entries[3].String(), "0xf007 JMP $f000")
}

func TestReadWriteSymbols(t *testing.T) {
	// address $00 is VSYNC on a write and CXM0P on a read
	dsm := disassemble(t, []uint8{
		0x85, 0x00, // STA VSYNC
		0xa5, 0x00, // LDA CXM0P
	})

	test.Equate(t, dsm.Entries[0].Operand, "VSYNC")
	test.Equate(t, dsm.Entries[1].Operand, "CXM0P")
}

func TestRelativeTarget(t *testing.T) {
	dsm := disassemble(t, []uint8{
		0xa2, 0x0a, // LDX #$0A
		0xca,       // DEX
		0xd0, 0xfd, // BNE $F002
	})

	test.Equate(t, dsm.Entries[2].String(), "0xf003 BNE $f002")
}

func TestDataBytes(t *testing.T) {
	// 0x02 is not a documented opcode
	dsm := disassemble(t, []uint8{
		0x02,
		0xea, // NOP
	})

	test.Equate(t, dsm.Entries[0].String(), "0xf000 .byte $02")
	test.Equate(t, dsm.Entries[1].String(), "0xf001 NOP")
}
