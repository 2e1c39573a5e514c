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

// Package cartridge presents the ROM to the bus through a 4k window. Only
// the "standard" unbanked format is supported; bank-switched formats are a
// different project.
package cartridge

import (
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/logger"
)

// sentinal error messages returned by the cartridge.
const (
	ROMTooLarge = "cartridge: ROM is too large (%d bytes) for the standard format"
)

// Size of the addressable window. The 6507 gives the cartridge twelve
// address lines so everything it can ever see is 4096 bytes.
const Size = 4096

// Cartridge is the read-only memory the console boots from.
type Cartridge struct {
	rom []uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. Before a ROM is attached every read returns zero.
func NewCartridge() *Cartridge {
	return &Cartridge{rom: make([]uint8, Size)}
}

// Attach a ROM to the cartridge. ROMs smaller than the window are mirrored
// to fill it; a 2k ROM reads identically at 0xf000 and 0xf800.
func (cart *Cartridge) Attach(data []uint8) error {
	if len(data) > Size {
		return curated.Errorf(ROMTooLarge, len(data))
	}

	if len(data) > 0 && len(data) < Size {
		logger.Log("cartridge", "ROM smaller than 4k, mirroring into the window")
	}

	cart.rom = make([]uint8, Size)
	if len(data) == 0 {
		return nil
	}
	for i := 0; i < Size; i++ {
		cart.rom[i] = data[i%len(data)]
	}

	return nil
}

// Read a byte from the cartridge. Only the low twelve bits of the address
// reach the ROM; the mirrors at 0xf000, 0xd000 and so on are all the same
// bytes.
func (cart *Cartridge) Read(address uint16) (uint8, error) {
	return cart.rom[address&0x0fff], nil
}

// Write to the cartridge. Standard format ROM ignores writes; some bus
// traffic (the discarded reads and writes of the CPU's longer addressing
// modes) lands here legitimately.
func (cart *Cartridge) Write(address uint16, data uint8) error {
	logger.Logf("cartridge", "write to ROM ignored (%#04x = %#02x)", address, data)
	return nil
}
