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

package cpu

// Stack is the 256 bytes of RAM the 6507 sees in page one. The CPU itself
// accesses it through the memory bus like any other area, meaning a program
// that addresses page one directly sees the same bytes as the pushed return
// addresses.
type Stack struct {
	ram [256]uint8
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack() *Stack {
	return &Stack{}
}

// Read a byte from the stack page. Address is masked to the page.
func (stk *Stack) Read(address uint16) (uint8, error) {
	return stk.ram[address&0x00ff], nil
}

// Write a byte to the stack page. Address is masked to the page.
func (stk *Stack) Write(address uint16, data uint8) error {
	stk.ram[address&0x00ff] = data
	return nil
}
