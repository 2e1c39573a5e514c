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

// Package cpubus defines the memory interface as the CPU sees it. The CPU
// knows nothing about how the address space is divided between the
// peripherals; every access goes through this interface and the bus decides
// who services it.
//
// The interface is in its own package so that the cpu package and the
// memory package do not need to import one another.
package cpubus

// Memory defines the operations for the memory system as required by the
// CPU. Every bus access is synchronous and re-entrant within the one logical
// thread of the emulation; neither function may block.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}
