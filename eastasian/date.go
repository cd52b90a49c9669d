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

package eastasian

import "github.com/chronolib/chronolib"

// Date is an immutable East Asian lunisolar date.
type Date struct {
	system          *System
	Cycle           int
	YearOfCycle     int
	Month           Month
	DayOfMonth      int
	absDay          int64
	leapMonthOfYear int
}

// System returns the calendar system (China, Korea, Vietnam, Japan)
// this date was constructed against.
func (d Date) System() *System { return d.system }

// LeapMonthOfYear returns the month number (1..12) carrying the leap
// month in this date's year, or 0 if the year has none.
func (d Date) LeapMonthOfYear() int { return d.leapMonthOfYear }

// ToAbsDay implements chronolib.CalendarSystem.
func (d Date) ToAbsDay() chronolib.AbsDay { return chronolib.AbsDay(d.absDay) }

// DayOfWeek implements the common weekday accessor.
func (d Date) DayOfWeek() chronolib.Weekday { return chronolib.DayOfWeek(chronolib.AbsDay(d.absDay)) }

// LengthOfMonth implements chronolib.CalendarSystem.
func (d Date) LengthOfMonth() int {
	first := d.absDay - int64(d.DayOfMonth) + 1
	next := nextNewMoon(d.system, first)
	return int(next - first)
}

// IsLeapYear implements chronolib.CalendarSystem: true iff this date's
// sui contains an inserted leap month.
func (d Date) IsLeapYear() bool { return d.leapMonthOfYear != 0 }

// DayOfYear returns d's 1-based ordinal day since its year's new-year
// day, or 0 if the containing year cannot be resolved.
func (d Date) DayOfYear() int {
	ny, _, err := yearContext(d.system, d.Cycle, d.YearOfCycle)
	if err != nil {
		return 0
	}
	return int(d.absDay - ny + 1)
}

// LengthOfYear implements chronolib.CalendarSystem.
func (d Date) LengthOfYear() int {
	ny, _, err := yearContext(d.system, d.Cycle, d.YearOfCycle)
	if err != nil {
		return 0
	}
	nextCycle, nextYearOfCycle := addCycleYearIndex(d.Cycle, d.YearOfCycle, 1)
	nextNY, _, err := yearContext(d.system, nextCycle, nextYearOfCycle)
	if err != nil {
		return 0
	}
	return int(nextNY - ny)
}

// Compare orders two dates of the same calendar system by absolute
// day.
func (d Date) Compare(o Date) int {
	switch {
	case d.absDay < o.absDay:
		return -1
	case d.absDay > o.absDay:
		return 1
	default:
		return 0
	}
}
