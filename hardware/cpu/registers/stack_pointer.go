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

package registers

import "fmt"

// StackPointer is the 8-bit stack pointer of the 6507. The stack is
// hardwired to the 256 bytes of page one; incrementing and decrementing the
// pointer wraps within the page and can never leave it.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the label assigned to the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory-mapped address the stack pointer currently
// points to. Always within page one.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Bump the stack pointer up (true) or down (false), wrapping within the
// page.
func (sp *StackPointer) Bump(up bool) {
	if up {
		sp.value++
	} else {
		sp.value--
	}
}
