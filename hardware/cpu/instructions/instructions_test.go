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

package instructions_test

import (
	"testing"

	"github.com/kalfield/beam2600/hardware/cpu/instructions"
	"github.com/kalfield/beam2600/test"
)

func TestTableCoverage(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.Equate(t, len(defns), 256)

	documented := 0
	for opcode, defn := range defns {
		if defn == nil {
			continue
		}
		documented++

		test.Equate(t, int(defn.OpCode), opcode)
		if defn.Mnemonic == "" {
			t.Errorf("opcode %#02x has no mnemonic", opcode)
		}
	}

	// the 6502 has 151 documented opcodes
	test.Equate(t, documented, 151)
}

func TestTableSpotChecks(t *testing.T) {
	defns := instructions.GetDefinitions()

	test.Equate(t, defns[0xea].Mnemonic, "NOP")
	test.Equate(t, defns[0xea].AddressingMode == instructions.Implied, true)

	test.Equate(t, defns[0xa9].Mnemonic, "LDA")
	test.Equate(t, defns[0xa9].AddressingMode == instructions.Immediate, true)

	test.Equate(t, defns[0x91].Mnemonic, "STA")
	test.Equate(t, defns[0x91].AddressingMode == instructions.IndirectIndexed, true)
	test.Equate(t, defns[0x91].Effect == instructions.Write, true)

	test.Equate(t, defns[0x1e].Mnemonic, "ASL")
	test.Equate(t, defns[0x1e].Effect == instructions.RMW, true)

	// famously undocumented
	if defns[0x02] != nil {
		t.Errorf("opcode 0x02 should not decode")
	}
}
