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

// Package riot emulates the PIA 6532, or RIOT, of the Atari VCS: 128 bytes
// of RAM, the interval timer and the two I/O ports. The ports are not
// connected to anything in this emulation; they read as fixed values
// meaning "nothing is plugged in and no switch is pressed".
package riot

import (
	"github.com/kalfield/beam2600/hardware/memory/addresses"
	"github.com/kalfield/beam2600/hardware/riot/timer"
	"github.com/kalfield/beam2600/logger"
)

// values returned by the unconnected I/O ports. all joystick directions
// and fire buttons released; console switches idle with the color/b&w
// switch on color.
const (
	portA = uint8(0xff)
	portB = uint8(0x3f)
)

// RIOT implements the PIA 6532 found in the Atari VCS.
type RIOT struct {
	Timer *timer.Timer

	ram [128]uint8
}

// NewRIOT is the preferred method of initialisation for the RIOT type.
func NewRIOT() *RIOT {
	return &RIOT{
		Timer: timer.NewTimer(),
	}
}

// Step the RIOT by one CPU cycle. Called by the TIA after the CPU on every
// derived clock edge.
func (riot *RIOT) Step() {
	riot.Timer.Step()
}

// Read a byte from RIOT RAM or a RIOT register.
func (riot *RIOT) Read(address uint16) (uint8, error) {
	if address >= 0x0080 && address <= 0x00ff {
		return riot.ram[address&0x007f], nil
	}

	switch address {
	case addresses.SWCHA:
		return portA, nil
	case addresses.SWACNT, addresses.SWBCNT:
		// data direction registers. all pins inputs.
		return 0x00, nil
	case addresses.SWCHB:
		return portB, nil
	case addresses.INTIM:
		return riot.Timer.Value(), nil
	case addresses.TIMINT:
		if riot.Timer.Expired() {
			return 0x80, nil
		}
		return 0x00, nil
	}

	logger.Logf("riot", "reading unhandled register (%#04x)", address)
	return 0x00, nil
}

// Write a byte to RIOT RAM or a RIOT register.
func (riot *RIOT) Write(address uint16, data uint8) error {
	if address >= 0x0080 && address <= 0x00ff {
		riot.ram[address&0x007f] = data
		return nil
	}

	switch address {
	case addresses.TIM1T:
		riot.Timer.Set(timer.TIM1T, data)
	case addresses.TIM8T:
		riot.Timer.Set(timer.TIM8T, data)
	case addresses.TIM64T:
		riot.Timer.Set(timer.TIM64T, data)
	case addresses.T1024T:
		riot.Timer.Set(timer.T1024T, data)
	case addresses.SWCHA, addresses.SWACNT, addresses.SWCHB, addresses.SWBCNT:
		// ports are not connected; nothing to update
	default:
		logger.Logf("riot", "writing unhandled register (%#04x = %#02x)", address, data)
	}

	return nil
}
