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

package logger

import (
	"strings"
	"testing"

	"github.com/kalfield/beam2600/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)

	b := &strings.Builder{}
	test.ExpectedFailure(t, l.write(b))
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test\n")

	// adding the same entry again collapses into a repeat count
	l.log("test", "this is a test")
	b.Reset()
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\n")
}

func TestLogger_maxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "1")
	l.log("test", "2")
	l.log("test", "3")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: 2\ntest: 3\n")

	b.Reset()
	l.tail(b, 1)
	test.Equate(t, b.String(), "test: 3\n")
}
