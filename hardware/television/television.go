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

// Package television holds the framebuffer the TIA renders into and the
// interface through which a host presents it. The TIA writes a pixel at a
// time; hosts read a frame at a time.
//
// The framebuffer covers the entire signal, horizontal blank and vertical
// blank included, so its dimensions are the 228 colour clocks by 262
// scanlines of the NTSC frame and not the visible picture. Hosts that only
// want the picture crop it themselves.
package television

import (
	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware/clocks"
)

// From the Stella Programmer's Guide:
//
// "Each scan lines starts with 68 clock counts of horizontal blank (not seen
// on the TV screen) followed by 160 clock counts to fully scan one line of
// TV picture."
const (
	HorizClksHBlank   = 68
	HorizClksVisible  = 160
	HorizClksScanline = 228
)

// An NTSC frame is 262 scanlines; the 2600 programmer is responsible for
// the VSYNC/VBLANK/picture/overscan split within them.
const (
	ScanlinesTotal = 262
)

// OscillatorRate is the TIA clock in Hz. Three colour clocks per CPU cycle.
const OscillatorRate = clocks.NTSC_TIA * 1000000

// FramesPerSecond for a well-behaved 262-scanline program.
const FramesPerSecond = OscillatorRate / (HorizClksScanline * ScanlinesTotal)

// sentinal error messages returned by the television.
const (
	OutOfSpec = "television: signal out of specification (scanline %d, clock %d)"
)

// videoBlack is the colour of a pixel no signal has reached.
const videoBlack = uint32(0xff000000)

// PixelRenderer implementations present the framebuffer to the user in
// some way. Attached with AddPixelRenderer().
type PixelRenderer interface {
	// NewFrame is called at the frame boundary. The framebuffer is
	// complete and safe to read until the function returns.
	NewFrame(frame int) error
}

// Television implements the NTSC television attached to the console.
type Television struct {
	// the framebuffer, row-major by scanline then colour clock. packed
	// 0xAARRGGBB
	framebuffer [ScanlinesTotal * HorizClksScanline]uint32

	frameNum  int
	renderers []PixelRenderer
}

// NewTelevision is the preferred method of initialisation for the
// Television type.
func NewTelevision() *Television {
	tv := &Television{}
	for i := range tv.framebuffer {
		tv.framebuffer[i] = videoBlack
	}
	return tv
}

// AddPixelRenderer attaches a presentation surface to the television.
func (tv *Television) AddPixelRenderer(renderer PixelRenderer) {
	tv.renderers = append(tv.renderers, renderer)
}

// Signal places one pixel into the framebuffer. value is the TIA colour
// register value. The TIA only signals inside the visible portion of the
// frame; anything else is an error in the caller.
func (tv *Television) Signal(scanline int, clock int, value uint8) error {
	if scanline < 0 || scanline >= ScanlinesTotal || clock < 0 || clock >= HorizClksScanline {
		return curated.Errorf(OutOfSpec, scanline, clock)
	}
	tv.framebuffer[scanline*HorizClksScanline+clock] = ColorFromValue(value)
	return nil
}

// NewFrame is called by the TIA on the frame boundary. Renderers see the
// completed frame.
func (tv *Television) NewFrame() error {
	tv.frameNum++
	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum); err != nil {
			return err
		}
	}
	return nil
}

// Frame returns the number of completed frames.
func (tv *Television) Frame() int {
	return tv.frameNum
}

// Pixel returns the packed colour at the given position.
func (tv *Television) Pixel(scanline int, clock int) uint32 {
	if scanline < 0 || scanline >= ScanlinesTotal || clock < 0 || clock >= HorizClksScanline {
		return videoBlack
	}
	return tv.framebuffer[scanline*HorizClksScanline+clock]
}

// Framebuffer returns the backing array of the framebuffer. Read-only by
// convention; safe to read at the frame boundary.
func (tv *Television) Framebuffer() []uint32 {
	return tv.framebuffer[:]
}
