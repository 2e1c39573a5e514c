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

import "strings"

// Status is the status register of the 6507. The bits of the register are
// represented by individual bool fields. Bit 5 has no flag; it is hardwired
// high and is represented only when the register is packed with Value().
type Status struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatus is the preferred method of initialisation for the Status type.
func NewStatus() Status {
	s := Status{}
	s.Reset()
	return s
}

// Label returns the label assigned to the status register.
func (sr Status) Label() string {
	return "SR"
}

func (sr Status) String() string {
	s := strings.Builder{}
	flag := func(on bool, set, unset string) {
		if on {
			s.WriteString(set)
		} else {
			s.WriteString(unset)
		}
	}
	flag(sr.Sign, "N", "n")
	flag(sr.Overflow, "V", "v")
	s.WriteString("-")
	flag(sr.Break, "B", "b")
	flag(sr.DecimalMode, "D", "d")
	flag(sr.InterruptDisable, "I", "i")
	flag(sr.Zero, "Z", "z")
	flag(sr.Carry, "C", "c")
	return s.String()
}

// Reset status flags to the power-on state.
func (sr *Status) Reset() {
	sr.Sign = false
	sr.Overflow = false
	sr.Break = true
	sr.DecimalMode = false
	sr.InterruptDisable = false
	sr.Zero = false
	sr.Carry = false
}

// Value returns the status register as a packed byte. The unused bit is
// always high.
func (sr Status) Value() uint8 {
	var v uint8 = 0x20
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

// Load status register from a packed byte.
func (sr *Status) Load(val uint8) {
	sr.Sign = val&0x80 == 0x80
	sr.Overflow = val&0x40 == 0x40
	sr.Break = val&0x10 == 0x10
	sr.DecimalMode = val&0x08 == 0x08
	sr.InterruptDisable = val&0x04 == 0x04
	sr.Zero = val&0x02 == 0x02
	sr.Carry = val&0x01 == 0x01
}
