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

package timer_test

import (
	"testing"

	"github.com/kalfield/beam2600/hardware/riot/timer"
	"github.com/kalfield/beam2600/test"
)

func stepTimer(tmr *timer.Timer, cycles int) {
	for i := 0; i < cycles; i++ {
		tmr.Step()
	}
}

func TestFirstDecrement(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Set(timer.TIM64T, 0x10)

	// the first decrement comes after exactly one cycle, whatever the
	// interval
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0x0f)

	// the second after a full interval
	stepTimer(tmr, 63)
	test.Equate(t, tmr.Peek(), 0x0f)
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0x0e)
}

func TestExpiryAndFreeRun(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Set(timer.T1024T, 0x0a)

	// 1 cycle for the first decrement, then nine full intervals to reach
	// zero, then one more interval sitting on zero
	stepTimer(tmr, 1+1024*10)
	test.Equate(t, tmr.Peek(), 0x00)
	test.Equate(t, tmr.Expired(), false)

	// the next cycle wraps the counter and raises the expiry flag
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0xff)
	test.Equate(t, tmr.Expired(), true)

	// free-running now, one decrement per cycle
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0xfe)
	stepTimer(tmr, 0xfe)
	test.Equate(t, tmr.Peek(), 0x00)
}

func TestInterval8(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Set(timer.TIM8T, 0x02)

	stepTimer(tmr, 1+8)
	test.Equate(t, tmr.Peek(), 0x00)

	// counter sits on zero for a full interval before wrapping
	stepTimer(tmr, 8)
	test.Equate(t, tmr.Peek(), 0x00)
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0xff)
	test.Equate(t, tmr.Expired(), true)
}

func TestReadSideEffect(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Set(timer.TIM64T, 0x05)
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0x04)

	// reading the counter re-arms one-cycle sampling
	test.Equate(t, tmr.Value(), 0x04)
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0x03)
	tmr.Step()
	test.Equate(t, tmr.Peek(), 0x02)
}

func TestRearmClearsExpiry(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Set(timer.TIM1T, 0x01)

	stepTimer(tmr, 3)
	test.Equate(t, tmr.Peek(), 0xff)
	test.Equate(t, tmr.Expired(), true)

	tmr.Set(timer.TIM8T, 0x10)
	test.Equate(t, tmr.Expired(), false)
	test.Equate(t, tmr.Peek(), 0x10)
}
