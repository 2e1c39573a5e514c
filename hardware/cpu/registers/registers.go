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

// Package registers implements the register file of the 6507. The
// arithmetic functions return the flag changes caused by the operation;
// storing them in the status register is the responsibility of the
// instruction implementations in the cpu package.
package registers

import "fmt"

// Register is an 8-bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{label: label, value: val}
}

// Label returns the label assigned to the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%#02x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a 16-bit address.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB of the register.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns new carry and overflow states.
func (r *Register) Add(val uint8, carry bool) (bool, bool) {
	v := uint16(r.value) + uint16(val)
	if carry {
		v++
	}

	// overflow is set when the sign of the result disagrees with the sign of
	// both operands
	overflow := ^(r.value^val)&(r.value^uint8(v))&0x80 == 0x80

	r.value = uint8(v)

	return v&0x100 == 0x100, overflow
}

// Subtract value from register. Returns new carry and overflow states. The
// 6507 subtracts by adding the one's complement of the operand; carry is the
// inverse of borrow.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	return r.Add(^val, carry)
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ASL (arithmetic shift left) shifts register one bit left. Returns the bit
// shifted out, to be used as the new carry state.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR (logical shift right) shifts register one bit right. Returns the bit
// shifted out, to be used as the new carry state.
func (r *Register) LSR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// ROL (rotate left) shifts register one bit left, inserting the current
// carry state at bit 0. Returns the bit shifted out.
func (r *Register) ROL(carry bool) bool {
	retCarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return retCarry
}

// ROR (rotate right) shifts register one bit right, inserting the current
// carry state at bit 7. Returns the bit shifted out.
func (r *Register) ROR(carry bool) bool {
	retCarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return retCarry
}
