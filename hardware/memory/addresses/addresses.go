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

// Package addresses records the canonical addresses of the registers in the
// VCS. The names are those used by the Stella Programmer's Guide and by
// every piece of VCS software ever disassembled.
//
// The bus, the chips and the tests all refer to registers through this
// package rather than through magic numbers.
package addresses

// TIA write registers. The TIA decodes only the six low bits of the
// address; these are the canonical locations.
const (
	VSYNC  = uint16(0x00)
	VBLANK = uint16(0x01)
	WSYNC  = uint16(0x02)
	RSYNC  = uint16(0x03)
	NUSIZ0 = uint16(0x04)
	NUSIZ1 = uint16(0x05)
	COLUP0 = uint16(0x06)
	COLUP1 = uint16(0x07)
	COLUPF = uint16(0x08)
	COLUBK = uint16(0x09)
	CTRLPF = uint16(0x0a)
	REFP0  = uint16(0x0b)
	REFP1  = uint16(0x0c)
	PF0    = uint16(0x0d)
	PF1    = uint16(0x0e)
	PF2    = uint16(0x0f)
	RESP0  = uint16(0x10)
	RESP1  = uint16(0x11)
	RESM0  = uint16(0x12)
	RESM1  = uint16(0x13)
	RESBL  = uint16(0x14)
	AUDC0  = uint16(0x15)
	AUDC1  = uint16(0x16)
	AUDF0  = uint16(0x17)
	AUDF1  = uint16(0x18)
	AUDV0  = uint16(0x19)
	AUDV1  = uint16(0x1a)
	GRP0   = uint16(0x1b)
	GRP1   = uint16(0x1c)
	ENAM0  = uint16(0x1d)
	ENAM1  = uint16(0x1e)
	ENABL  = uint16(0x1f)
	HMP0   = uint16(0x20)
	HMP1   = uint16(0x21)
	HMM0   = uint16(0x22)
	HMM1   = uint16(0x23)
	HMBL   = uint16(0x24)
	VDELP0 = uint16(0x25)
	VDELP1 = uint16(0x26)
	VDELBL = uint16(0x27)
	RESMP0 = uint16(0x28)
	RESMP1 = uint16(0x29)
	HMOVE  = uint16(0x2a)
	HMCLR  = uint16(0x2b)
	CXCLR  = uint16(0x2c)
)

// TIA read registers. The read and write decodes are separate circuits in
// the chip, which is why the two sets overlap in address but not meaning.
const (
	CXM0P  = uint16(0x00)
	CXM1P  = uint16(0x01)
	CXP0FB = uint16(0x02)
	CXP1FB = uint16(0x03)
	CXM0FB = uint16(0x04)
	CXM1FB = uint16(0x05)
	CXBLPF = uint16(0x06)
	CXPPMM = uint16(0x07)
	INPT0  = uint16(0x08)
	INPT1  = uint16(0x09)
	INPT2  = uint16(0x0a)
	INPT3  = uint16(0x0b)
	INPT4  = uint16(0x0c)
	INPT5  = uint16(0x0d)
)

// RIOT registers.
const (
	SWCHA  = uint16(0x280)
	SWACNT = uint16(0x281)
	SWCHB  = uint16(0x282)
	SWBCNT = uint16(0x283)
	INTIM  = uint16(0x284)
	TIMINT = uint16(0x285)
	TIM1T  = uint16(0x294)
	TIM8T  = uint16(0x295)
	TIM64T = uint16(0x296)
	T1024T = uint16(0x297)
)

// Reset and interrupt vectors, read through the cartridge.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// TIAWriteSymbols maps the address of a TIA write register to its name.
var TIAWriteSymbols = map[uint16]string{
	VSYNC:  "VSYNC",
	VBLANK: "VBLANK",
	WSYNC:  "WSYNC",
	RSYNC:  "RSYNC",
	NUSIZ0: "NUSIZ0",
	NUSIZ1: "NUSIZ1",
	COLUP0: "COLUP0",
	COLUP1: "COLUP1",
	COLUPF: "COLUPF",
	COLUBK: "COLUBK",
	CTRLPF: "CTRLPF",
	REFP0:  "REFP0",
	REFP1:  "REFP1",
	PF0:    "PF0",
	PF1:    "PF1",
	PF2:    "PF2",
	RESP0:  "RESP0",
	RESP1:  "RESP1",
	RESM0:  "RESM0",
	RESM1:  "RESM1",
	RESBL:  "RESBL",
	AUDC0:  "AUDC0",
	AUDC1:  "AUDC1",
	AUDF0:  "AUDF0",
	AUDF1:  "AUDF1",
	AUDV0:  "AUDV0",
	AUDV1:  "AUDV1",
	GRP0:   "GRP0",
	GRP1:   "GRP1",
	ENAM0:  "ENAM0",
	ENAM1:  "ENAM1",
	ENABL:  "ENABL",
	HMP0:   "HMP0",
	HMP1:   "HMP1",
	HMM0:   "HMM0",
	HMM1:   "HMM1",
	HMBL:   "HMBL",
	VDELP0: "VDELP0",
	VDELP1: "VDELP1",
	VDELBL: "VDELBL",
	RESMP0: "RESMP0",
	RESMP1: "RESMP1",
	HMOVE:  "HMOVE",
	HMCLR:  "HMCLR",
	CXCLR:  "CXCLR",
}

// TIAReadSymbols maps the address of a TIA read register to its name.
var TIAReadSymbols = map[uint16]string{
	CXM0P:  "CXM0P",
	CXM1P:  "CXM1P",
	CXP0FB: "CXP0FB",
	CXP1FB: "CXP1FB",
	CXM0FB: "CXM0FB",
	CXM1FB: "CXM1FB",
	CXBLPF: "CXBLPF",
	CXPPMM: "CXPPMM",
	INPT0:  "INPT0",
	INPT1:  "INPT1",
	INPT2:  "INPT2",
	INPT3:  "INPT3",
	INPT4:  "INPT4",
	INPT5:  "INPT5",
}

// RIOTSymbols maps the address of a RIOT register to its name.
var RIOTSymbols = map[uint16]string{
	SWCHA:  "SWCHA",
	SWACNT: "SWACNT",
	SWCHB:  "SWCHB",
	SWBCNT: "SWBCNT",
	INTIM:  "INTIM",
	TIMINT: "TIMINT",
	TIM1T:  "TIM1T",
	TIM8T:  "TIM8T",
	TIM64T: "TIM64T",
	T1024T: "T1024T",
}
