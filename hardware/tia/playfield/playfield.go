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

// Package playfield implements the playfield of the TIA. The player,
// missile and ball sprites are separate circuits and are not part of this
// package.
package playfield

// Playfield represents the playfield of the TIA. The playfield is forty
// dots wide, each dot four colour clocks. The left twenty dots come from
// the PF0, PF1 and PF2 registers; the right twenty are a copy, reflected
// if the reflection bit of CTRLPF is set.
type Playfield struct {
	// current register values, after masking. PF0 only has its high nibble
	// connected.
	PF0 uint8
	PF1 uint8
	PF2 uint8

	// reflection bit of CTRLPF
	Reflected bool

	// the left-half pattern, decoded from the registers. the register bits
	// map to dots in the order the chip's pins are wired, which is not a
	// straight scan:
	//
	//	dots 0..3    PF0 bits 4..7
	//	dots 4..11   PF1 bits 7..0
	//	dots 12..19  PF2 bits 0..7
	data [20]bool
}

// NewPlayfield is the preferred method of initialisation for the Playfield
// type.
func NewPlayfield() *Playfield {
	return &Playfield{}
}

// SetPF0 updates the playfield with a write to the PF0 register. Only the
// high nibble is connected.
func (pf *Playfield) SetPF0(value uint8) {
	pf.PF0 = value & 0xf0
	for i := 0; i < 4; i++ {
		pf.data[i] = pf.PF0>>(4+i)&0x01 == 0x01
	}
}

// SetPF1 updates the playfield with a write to the PF1 register.
func (pf *Playfield) SetPF1(value uint8) {
	pf.PF1 = value
	for i := 0; i < 8; i++ {
		pf.data[4+i] = pf.PF1>>(7-i)&0x01 == 0x01
	}
}

// SetPF2 updates the playfield with a write to the PF2 register.
func (pf *Playfield) SetPF2(value uint8) {
	pf.PF2 = value
	for i := 0; i < 8; i++ {
		pf.data[12+i] = pf.PF2>>i&0x01 == 0x01
	}
}

// SetReflected updates the playfield with the reflection bit of a CTRLPF
// write.
func (pf *Playfield) SetReflected(reflected bool) {
	pf.Reflected = reflected
}

// Dot returns the state of the playfield at the given dot, 0 to 39.
func (pf *Playfield) Dot(dot int) bool {
	if dot < 20 {
		return pf.data[dot]
	}
	if pf.Reflected {
		return pf.data[39-dot]
	}
	return pf.data[dot-20]
}
