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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/kalfield/beam2600/curated"
)

// FileExtensions is the list of file extensions recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".2K", ".4K"}

// Loader is used to specify the cartridge to use when Attach()ing to the
// VCS.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// hash of the loaded cartridge. empty until a load operation, after
	// which it is the SHA1 of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() return this
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the loader's filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use
// that method to load the data. Currently supported schemes are HTTP and
// local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough
	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: unsupported scheme (%s)", scheme)
	}

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))

	return nil
}
