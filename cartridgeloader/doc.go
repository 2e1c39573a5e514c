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

// Package cartridgeloader is used to specify the cartridge file to load into
// the emulated console. The Loader type records where the file came from and
// the hash of its data, which is useful for identifying ROMs unambiguously
// in logs and bug reports.
//
// Loading is from the local filesystem or over HTTP, depending on the
// scheme of the supplied filename.
package cartridgeloader
