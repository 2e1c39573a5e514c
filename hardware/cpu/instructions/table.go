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

package instructions

// GetDefinitions returns the table of instruction definitions for the 6507,
// indexed by opcode. Entries for undocumented opcodes are nil; executing one
// is a fatal error.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)

	add := func(opcode uint8, mnemonic string, operator Operator, mode AddressingMode, effect EffectCategory) {
		table[opcode] = &Definition{
			OpCode:         opcode,
			Mnemonic:       mnemonic,
			Operator:       operator,
			AddressingMode: mode,
			Effect:         effect,
		}
	}

	// load
	add(0xa9, "LDA", Lda, Immediate, Read)
	add(0xa5, "LDA", Lda, ZeroPage, Read)
	add(0xb5, "LDA", Lda, ZeroPageIndexedX, Read)
	add(0xad, "LDA", Lda, Absolute, Read)
	add(0xbd, "LDA", Lda, AbsoluteIndexedX, Read)
	add(0xb9, "LDA", Lda, AbsoluteIndexedY, Read)
	add(0xa1, "LDA", Lda, IndexedIndirect, Read)
	add(0xb1, "LDA", Lda, IndirectIndexed, Read)
	add(0xa2, "LDX", Ldx, Immediate, Read)
	add(0xa6, "LDX", Ldx, ZeroPage, Read)
	add(0xb6, "LDX", Ldx, ZeroPageIndexedY, Read)
	add(0xae, "LDX", Ldx, Absolute, Read)
	add(0xbe, "LDX", Ldx, AbsoluteIndexedY, Read)
	add(0xa0, "LDY", Ldy, Immediate, Read)
	add(0xa4, "LDY", Ldy, ZeroPage, Read)
	add(0xb4, "LDY", Ldy, ZeroPageIndexedX, Read)
	add(0xac, "LDY", Ldy, Absolute, Read)
	add(0xbc, "LDY", Ldy, AbsoluteIndexedX, Read)

	// store
	add(0x85, "STA", Sta, ZeroPage, Write)
	add(0x95, "STA", Sta, ZeroPageIndexedX, Write)
	add(0x8d, "STA", Sta, Absolute, Write)
	add(0x9d, "STA", Sta, AbsoluteIndexedX, Write)
	add(0x99, "STA", Sta, AbsoluteIndexedY, Write)
	add(0x81, "STA", Sta, IndexedIndirect, Write)
	add(0x91, "STA", Sta, IndirectIndexed, Write)
	add(0x86, "STX", Stx, ZeroPage, Write)
	add(0x96, "STX", Stx, ZeroPageIndexedY, Write)
	add(0x8e, "STX", Stx, Absolute, Write)
	add(0x84, "STY", Sty, ZeroPage, Write)
	add(0x94, "STY", Sty, ZeroPageIndexedX, Write)
	add(0x8c, "STY", Sty, Absolute, Write)

	// transfer
	add(0xaa, "TAX", Tax, Implied, Read)
	add(0xa8, "TAY", Tay, Implied, Read)
	add(0xba, "TSX", Tsx, Implied, Read)
	add(0x8a, "TXA", Txa, Implied, Read)
	add(0x9a, "TXS", Txs, Implied, Read)
	add(0x98, "TYA", Tya, Implied, Read)

	// arithmetic
	add(0x69, "ADC", Adc, Immediate, Read)
	add(0x65, "ADC", Adc, ZeroPage, Read)
	add(0x75, "ADC", Adc, ZeroPageIndexedX, Read)
	add(0x6d, "ADC", Adc, Absolute, Read)
	add(0x7d, "ADC", Adc, AbsoluteIndexedX, Read)
	add(0x79, "ADC", Adc, AbsoluteIndexedY, Read)
	add(0x61, "ADC", Adc, IndexedIndirect, Read)
	add(0x71, "ADC", Adc, IndirectIndexed, Read)
	add(0xe9, "SBC", Sbc, Immediate, Read)
	add(0xe5, "SBC", Sbc, ZeroPage, Read)
	add(0xf5, "SBC", Sbc, ZeroPageIndexedX, Read)
	add(0xed, "SBC", Sbc, Absolute, Read)
	add(0xfd, "SBC", Sbc, AbsoluteIndexedX, Read)
	add(0xf9, "SBC", Sbc, AbsoluteIndexedY, Read)
	add(0xe1, "SBC", Sbc, IndexedIndirect, Read)
	add(0xf1, "SBC", Sbc, IndirectIndexed, Read)

	// logic
	add(0x29, "AND", And, Immediate, Read)
	add(0x25, "AND", And, ZeroPage, Read)
	add(0x35, "AND", And, ZeroPageIndexedX, Read)
	add(0x2d, "AND", And, Absolute, Read)
	add(0x3d, "AND", And, AbsoluteIndexedX, Read)
	add(0x39, "AND", And, AbsoluteIndexedY, Read)
	add(0x21, "AND", And, IndexedIndirect, Read)
	add(0x31, "AND", And, IndirectIndexed, Read)
	add(0x09, "ORA", Ora, Immediate, Read)
	add(0x05, "ORA", Ora, ZeroPage, Read)
	add(0x15, "ORA", Ora, ZeroPageIndexedX, Read)
	add(0x0d, "ORA", Ora, Absolute, Read)
	add(0x1d, "ORA", Ora, AbsoluteIndexedX, Read)
	add(0x19, "ORA", Ora, AbsoluteIndexedY, Read)
	add(0x01, "ORA", Ora, IndexedIndirect, Read)
	add(0x11, "ORA", Ora, IndirectIndexed, Read)
	add(0x49, "EOR", Eor, Immediate, Read)
	add(0x45, "EOR", Eor, ZeroPage, Read)
	add(0x55, "EOR", Eor, ZeroPageIndexedX, Read)
	add(0x4d, "EOR", Eor, Absolute, Read)
	add(0x5d, "EOR", Eor, AbsoluteIndexedX, Read)
	add(0x59, "EOR", Eor, AbsoluteIndexedY, Read)
	add(0x41, "EOR", Eor, IndexedIndirect, Read)
	add(0x51, "EOR", Eor, IndirectIndexed, Read)
	add(0x24, "BIT", Bit, ZeroPage, Read)
	add(0x2c, "BIT", Bit, Absolute, Read)

	// increment/decrement
	add(0xe6, "INC", Inc, ZeroPage, RMW)
	add(0xf6, "INC", Inc, ZeroPageIndexedX, RMW)
	add(0xee, "INC", Inc, Absolute, RMW)
	add(0xfe, "INC", Inc, AbsoluteIndexedX, RMW)
	add(0xc6, "DEC", Dec, ZeroPage, RMW)
	add(0xd6, "DEC", Dec, ZeroPageIndexedX, RMW)
	add(0xce, "DEC", Dec, Absolute, RMW)
	add(0xde, "DEC", Dec, AbsoluteIndexedX, RMW)
	add(0xe8, "INX", Inx, Implied, Read)
	add(0xc8, "INY", Iny, Implied, Read)
	add(0xca, "DEX", Dex, Implied, Read)
	add(0x88, "DEY", Dey, Implied, Read)

	// shift/rotate
	add(0x0a, "ASL", Asl, Accumulator, Read)
	add(0x06, "ASL", Asl, ZeroPage, RMW)
	add(0x16, "ASL", Asl, ZeroPageIndexedX, RMW)
	add(0x0e, "ASL", Asl, Absolute, RMW)
	add(0x1e, "ASL", Asl, AbsoluteIndexedX, RMW)
	add(0x4a, "LSR", Lsr, Accumulator, Read)
	add(0x46, "LSR", Lsr, ZeroPage, RMW)
	add(0x56, "LSR", Lsr, ZeroPageIndexedX, RMW)
	add(0x4e, "LSR", Lsr, Absolute, RMW)
	add(0x5e, "LSR", Lsr, AbsoluteIndexedX, RMW)
	add(0x2a, "ROL", Rol, Accumulator, Read)
	add(0x26, "ROL", Rol, ZeroPage, RMW)
	add(0x36, "ROL", Rol, ZeroPageIndexedX, RMW)
	add(0x2e, "ROL", Rol, Absolute, RMW)
	add(0x3e, "ROL", Rol, AbsoluteIndexedX, RMW)
	add(0x6a, "ROR", Ror, Accumulator, Read)
	add(0x66, "ROR", Ror, ZeroPage, RMW)
	add(0x76, "ROR", Ror, ZeroPageIndexedX, RMW)
	add(0x6e, "ROR", Ror, Absolute, RMW)
	add(0x7e, "ROR", Ror, AbsoluteIndexedX, RMW)

	// compare
	add(0xc9, "CMP", Cmp, Immediate, Read)
	add(0xc5, "CMP", Cmp, ZeroPage, Read)
	add(0xd5, "CMP", Cmp, ZeroPageIndexedX, Read)
	add(0xcd, "CMP", Cmp, Absolute, Read)
	add(0xdd, "CMP", Cmp, AbsoluteIndexedX, Read)
	add(0xd9, "CMP", Cmp, AbsoluteIndexedY, Read)
	add(0xc1, "CMP", Cmp, IndexedIndirect, Read)
	add(0xd1, "CMP", Cmp, IndirectIndexed, Read)
	add(0xe0, "CPX", Cpx, Immediate, Read)
	add(0xe4, "CPX", Cpx, ZeroPage, Read)
	add(0xec, "CPX", Cpx, Absolute, Read)
	add(0xc0, "CPY", Cpy, Immediate, Read)
	add(0xc4, "CPY", Cpy, ZeroPage, Read)
	add(0xcc, "CPY", Cpy, Absolute, Read)

	// branch
	add(0x90, "BCC", Bcc, Relative, Flow)
	add(0xb0, "BCS", Bcs, Relative, Flow)
	add(0xf0, "BEQ", Beq, Relative, Flow)
	add(0x30, "BMI", Bmi, Relative, Flow)
	add(0xd0, "BNE", Bne, Relative, Flow)
	add(0x10, "BPL", Bpl, Relative, Flow)
	add(0x50, "BVC", Bvc, Relative, Flow)
	add(0x70, "BVS", Bvs, Relative, Flow)

	// stack
	add(0x48, "PHA", Pha, Implied, Read)
	add(0x08, "PHP", Php, Implied, Read)
	add(0x68, "PLA", Pla, Implied, Read)
	add(0x28, "PLP", Plp, Implied, Read)

	// flag-set
	add(0x18, "CLC", Clc, Implied, Read)
	add(0xd8, "CLD", Cld, Implied, Read)
	add(0x58, "CLI", Cli, Implied, Read)
	add(0xb8, "CLV", Clv, Implied, Read)
	add(0x38, "SEC", Sec, Implied, Read)
	add(0xf8, "SED", Sed, Implied, Read)
	add(0x78, "SEI", Sei, Implied, Read)

	// jump and subroutine
	add(0x4c, "JMP", Jmp, Absolute, Flow)
	add(0x6c, "JMP", Jmp, Indirect, Flow)
	add(0x20, "JSR", Jsr, Absolute, Flow)
	add(0x60, "RTS", Rts, Implied, Flow)
	add(0x00, "BRK", Brk, Implied, Flow)
	add(0x40, "RTI", Rti, Implied, Flow)

	// no-op
	add(0xea, "NOP", Nop, Implied, Read)

	return table
}
