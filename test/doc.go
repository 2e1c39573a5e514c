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

// Package test contains helper functions to remove common boilerplate from
// the package tests found throughout the project.
//
// The Equate() function compares like-typed values for equality, with the
// convenience of allowing untyped int literals as the expected value for the
// unsigned integer types used by the emulation.
//
// ExpectedFailure() and ExpectedSuccess() test the value of error or bool
// types.
package test
