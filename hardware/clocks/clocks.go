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

// Package clocks defines the clock rates of the NTSC console. The crystal
// drives the TIA directly and the TIA divides by three for the CPU, so the
// CPU rate is a derived value, never an independent one.
//
// Values in MHz, taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
package clocks

const (
	// NTSC_TIA is the rate of the colour clock
	NTSC_TIA = 3.579545

	// NTSC is the rate of the CPU clock
	NTSC = NTSC_TIA / 3
)
