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

// Package memory implements the address bus of the VCS. The 6507 exposes
// thirteen address lines and the console decodes them into four areas: the
// TIA registers, the RIOT's RAM (doubling as the CPU stack page through a
// mirror), the RIOT's timer and port registers, and the cartridge.
//
// There is no memory controller in the console, only address decoding, so
// a read of an unmapped address returns whatever the bus floats to. This
// emulation returns zero and notes the access in the log.
package memory

import (
	"github.com/kalfield/beam2600/hardware/cpu"
	"github.com/kalfield/beam2600/hardware/memory/cartridge"
	"github.com/kalfield/beam2600/hardware/riot"
	"github.com/kalfield/beam2600/hardware/tia"
	"github.com/kalfield/beam2600/logger"
)

// VCSMemory decodes CPU addresses into the chips of the console.
type VCSMemory struct {
	TIA   *tia.TIA
	RIOT  *riot.RIOT
	Stack *cpu.Stack
	Cart  *cartridge.Cartridge
}

// NewVCSMemory is the preferred method of initialisation for the VCSMemory
// type.
func NewVCSMemory(tia *tia.TIA, riot *riot.RIOT, stack *cpu.Stack, cart *cartridge.Cartridge) *VCSMemory {
	return &VCSMemory{
		TIA:   tia,
		RIOT:  riot,
		Stack: stack,
		Cart:  cart,
	}
}

// Read a value from the address bus.
func (mem *VCSMemory) Read(address uint16) (uint8, error) {
	// the 6507 has thirteen address lines
	address &= 0x1fff

	switch {
	case address <= 0x000d:
		return mem.TIA.Read(address)
	case address >= 0x0030 && address <= 0x003d:
		// TIA read mirror
		return mem.TIA.Read(address)
	case address >= 0x0080 && address <= 0x00ff:
		return mem.RIOT.Read(address)
	case address >= 0x0100 && address <= 0x01ff:
		return mem.Stack.Read(address)
	case address >= 0x0280 && address <= 0x0297:
		return mem.RIOT.Read(address)
	case address >= 0x1000:
		return mem.Cart.Read(address)
	}

	logger.Logf("memory", "reading unmapped address (%#04x)", address)
	return 0x00, nil
}

// Write a value to the address bus.
func (mem *VCSMemory) Write(address uint16, data uint8) error {
	address &= 0x1fff

	switch {
	case address <= 0x002c:
		return mem.TIA.Write(address, data)
	case address >= 0x0080 && address <= 0x00ff:
		return mem.RIOT.Write(address, data)
	case address >= 0x0100 && address <= 0x01ff:
		return mem.Stack.Write(address, data)
	case address >= 0x0280 && address <= 0x0297:
		return mem.RIOT.Write(address, data)
	case address >= 0x1000:
		return mem.Cart.Write(address, data)
	}

	logger.Logf("memory", "writing unmapped address (%#04x = %#02x)", address, data)
	return nil
}
