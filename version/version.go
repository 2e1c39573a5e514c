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

// Package version records the version number of the project.
package version

// The name to use when referring to the application.
const ApplicationName = "Beam2600"

// set through the linker at build time. if the value is empty then the
// project was probably not built using the makefile
var number string

// Version returns the version string and whether this is a numbered
// "release" version.
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}
