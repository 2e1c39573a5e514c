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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kalfield/beam2600/cartridgeloader"
	"github.com/kalfield/beam2600/test"
)

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("/roms/pitfall.bin")
	test.Equate(t, cl.ShortName(), "pitfall")

	cl = cartridgeloader.NewLoader("adventure.A26")
	test.Equate(t, cl.ShortName(), "adventure")
}

func TestLoadFile(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = uint8(i)
	}

	fn := filepath.Join(t.TempDir(), "test.bin")
	err := os.WriteFile(fn, data, 0644)
	if err != nil {
		t.Fatal(err)
	}

	cl := cartridgeloader.NewLoader(fn)
	test.Equate(t, cl.HasLoaded(), false)

	err = cl.Load()
	test.ExpectedSuccess(t, err)

	test.Equate(t, cl.HasLoaded(), true)
	test.Equate(t, len(cl.Data), 4096)
	test.Equate(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// a second load is a no-op
	err = cl.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(cl.Data), 4096)
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "no-such.bin"))
	err := cl.Load()
	test.ExpectedFailure(t, err)
}
