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

// Package instructions defines the instruction set of the 6507 as a table
// mapping opcode to an (operator, addressing mode) pair. The cpu package
// interprets the table; extending the instruction set is a table-entry
// change only.
package instructions

import "fmt"

// AddressingMode describes the method by which data for the instruction is
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind, used only by JMP

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "(indirect,X)"
	case IndirectIndexed:
		return "(indirect),Y"
	case AbsoluteIndexedX:
		return "absolute,X"
	case AbsoluteIndexedY:
		return "absolute,Y"
	case ZeroPageIndexedX:
		return "zero page,X"
	case ZeroPageIndexedY:
		return "zero page,Y"
	}
	return "unknown addressing mode"
}

// Operator is the semantic class instance for an instruction. Every opcode
// maps to exactly one (Operator, AddressingMode) pair.
type Operator int

// List of operators.
const (
	Nop Operator = iota

	// load/store/transfer
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// arithmetic and logic
	Adc
	Sbc
	And
	Ora
	Eor
	Bit
	Inc
	Dec
	Inx
	Iny
	Dex
	Dey

	// shift/rotate
	Asl
	Lsr
	Rol
	Ror

	// compare
	Cmp
	Cpx
	Cpy

	// branch
	Bcc
	Bcs
	Beq
	Bmi
	Bne
	Bpl
	Bvc
	Bvs

	// stack
	Pha
	Php
	Pla
	Plp

	// flag-set
	Clc
	Cld
	Cli
	Clv
	Sec
	Sed
	Sei

	// jump and subroutine
	Jmp
	Jsr
	Rts
	Brk
	Rti
)

// EffectCategory categorises an instruction by the effect it has on memory.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW
	Flow
)

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operator       Operator
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s [%s]", defn.OpCode, defn.Mnemonic, defn.AddressingMode)
}
