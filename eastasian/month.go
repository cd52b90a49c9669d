// Copyright (C) 2024  chronolib contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package eastasian implements the shared East Asian lunisolar engine
// (astronomical new-moon/solstice reconstruction, sexagesimal cycle
// indexing, leap-month placement) and the China, Korea, Vietnam, and
// old-Japan calendar systems built on it.
package eastasian

import "fmt"

// Month is an East Asian lunisolar month: a number 1..12 and a leap
// flag. Ordering is by Number, ties broken placing Leap=true after
// Leap=false.
type Month struct {
	Number int
	Leap   bool
}

// Compare returns -1, 0, or 1 as m orders before, same as, or after o.
func (m Month) Compare(o Month) int {
	if m.Number != o.Number {
		if m.Number < o.Number {
			return -1
		}
		return 1
	}
	if m.Leap == o.Leap {
		return 0
	}
	if o.Leap {
		return -1
	}
	return 1
}

func (m Month) String() string {
	if m.Leap {
		return fmt.Sprintf("leap-%d", m.Number)
	}
	return fmt.Sprintf("%d", m.Number)
}
