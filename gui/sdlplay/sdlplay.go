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

// Package sdlplay is a simple SDL presentation of the emulated television.
// It registers itself as a PixelRenderer and streams the framebuffer to a
// texture at every frame boundary.
//
// SDL wants its calls on the main thread, so Service() must be called from
// the same goroutine that runs the emulation loop.
package sdlplay

import (
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware/television"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// a colour clock is half the width of a pixel of a modern square-pixel
// display
const pixelWidth = 2.0

// SdlPlay is a simple SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	tv *television.Television

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array we copy to the texture every NewFrame(). it
	// covers the visible beam, not the horizontal blank
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. The new window is visible immediately.
func NewSdlPlay(tv *television.Television, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{tv: tv}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	w := int32(float32(television.HorizClksVisible) * scale * pixelWidth)
	h := int32(float32(television.ScanlinesTotal) * scale)

	scr.window, err = sdl.CreateWindow("Beam2600",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the size of the visible picture. the renderer scales it to
	// the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		television.HorizClksVisible,
		television.ScanlinesTotal)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, television.HorizClksVisible*television.ScanlinesTotal*pixelDepth)

	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	tv.AddPixelRenderer(scr)

	return scr, nil
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frameNum int) error {
	i := 0
	for sl := 0; sl < television.ScanlinesTotal; sl++ {
		for cl := television.HorizClksHBlank; cl < television.HorizClksScanline; cl++ {
			col := scr.tv.Pixel(sl, cl)
			scr.pixels[i] = byte(col >> 16)
			scr.pixels[i+1] = byte(col >> 8)
			scr.pixels[i+2] = byte(col)
			scr.pixels[i+3] = byte(col >> 24)
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, television.HorizClksVisible*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// Service the SDL event queue. Returns false when the user has asked for
// the window to close.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}

// Destroy the SDL resources. The SdlPlay value is unusable afterwards.
func (scr *SdlPlay) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
