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

// Package curated is a helper package for the error type. Curated errors
// keep their formatting pattern after creation, meaning that errors can be
// compared against the pattern with the Is() and Has() functions.
//
// The emulation has no recoverable error paths. Every error raised by the
// hardware packages is fatal to the current emulation but we still want
// tests (and the top-level program) to be able to identify which failure
// condition was met. Comparing against the original pattern is more robust
// than comparing against a fully realised message which will contain
// instance specific values (program counter, opcode, address).
package curated
