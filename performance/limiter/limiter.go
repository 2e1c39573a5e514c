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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"
)

// only any good if base performance of the machine is well above the
// required rate.

// FpsLimiter will trigger at the requested rate.
type FpsLimiter struct {
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the
// FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{
		secondsPerFrame: time.Duration(float64(time.Second) / framesPerSecond),
		tick:            make(chan bool),
	}

	// run ticker concurrently. the sleep duration is adjusted every trigger
	// to absorb drift
	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// Wait will block until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already elapsed and false if it
// is still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
