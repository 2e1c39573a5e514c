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

// Package timer emulates the interval timer in the RIOT chip. Stepped once
// per CPU cycle by the RIOT.
//
// The down-counter is divided from the CPU clock by an interval of 1, 8, 64
// or 1024, chosen by which of the four timer registers the program writes.
// Two quirks matter to real software and are reproduced here: the first
// decrement after a write happens after exactly one cycle regardless of the
// interval, and once the counter has sat at zero for a full interval it
// wraps to 0xff and free-runs at one decrement per cycle until rearmed.
package timer

import "fmt"

// Interval is the number of CPU cycles between decrements.
type Interval int

// List of valid Interval values.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown interval"
}

// Timer implements the interval timer of the RIOT.
type Timer struct {
	interval Interval

	// value is the current value of the down-counter, visible to programs
	// through INTIM
	value uint8

	// expired is true from the free-running wraparound until the next
	// write, visible to programs through TIMINT
	expired bool

	// cycles remaining before the next decrement is considered
	ticksRemaining int

	// once the counter has spent a full interval on zero it decrements
	// every cycle until rearmed
	freeRunning bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	// power-on interval is T1024T with an unpredictable counter value. we
	// use zero for determinism.
	return &Timer{
		interval:       T1024T,
		ticksRemaining: 1,
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x remn=%#02x intv=%s", tmr.value, tmr.ticksRemaining, tmr.interval)
}

// Set the timer from one of the four timer registers. The counter is
// reloaded and the tick phase restarted; the first decrement comes after
// exactly one cycle.
func (tmr *Timer) Set(interval Interval, value uint8) {
	tmr.interval = interval
	tmr.value = value
	tmr.expired = false
	tmr.freeRunning = false
	tmr.ticksRemaining = 1
}

// Value returns the current counter value, as a read of the INTIM register.
// Reading the register re-arms one-cycle sampling and clears the expiry
// flag, as on the real chip.
func (tmr *Timer) Value() uint8 {
	tmr.expired = false
	tmr.freeRunning = true
	tmr.ticksRemaining = 1
	return tmr.value
}

// Peek the counter value without the read side effects. For tests and
// debugging only.
func (tmr *Timer) Peek() uint8 {
	return tmr.value
}

// Expired returns the state of the expiry flag, as a read of the TIMINT
// register.
func (tmr *Timer) Expired() bool {
	return tmr.expired
}

// Step the timer by one CPU cycle.
func (tmr *Timer) Step() {
	tmr.ticksRemaining--
	if tmr.ticksRemaining > 0 {
		return
	}

	if tmr.value == 0 {
		if tmr.freeRunning {
			tmr.value = 0xff
			tmr.expired = true
			tmr.ticksRemaining = 1
			return
		}

		// the counter sits on zero for one more interval before wrapping
		tmr.freeRunning = true
		tmr.ticksRemaining = 1
		return
	}

	tmr.value--
	if tmr.freeRunning {
		tmr.ticksRemaining = 1
	} else {
		tmr.ticksRemaining = int(tmr.interval)
	}
}
