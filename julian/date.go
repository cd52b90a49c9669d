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

// Package julian implements the proleptic Julian calendar: a fixed
// y%4==0 leap rule over the shared AbsDay timeline.
package julian

import (
	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// Date is an immutable proleptic Julian calendar date.
type Date struct {
	ProlepticYear int
	Month         int
	DayOfMonth    int
	absDay        int64
}

// Of constructs a validated Julian Date.
func Of(prolepticYear, month, dayOfMonth int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, chronolib.NewError(chronolib.OutOfRange, "julian month %d out of range [1,12]", month)
	}
	length := lengthOfMonth(prolepticYear, month)
	if dayOfMonth < 1 || dayOfMonth > length {
		return Date{}, chronolib.NewError(chronolib.InvalidDate, "julian %d-%02d has no day %d (month has %d days)", prolepticYear, month, dayOfMonth, length)
	}
	d := astro.AbsDayFromJulian(prolepticYear, month, dayOfMonth)
	return Date{ProlepticYear: prolepticYear, Month: month, DayOfMonth: dayOfMonth, absDay: d}, nil
}

// FromAbsDay reconstructs the Julian Date containing AbsDay d.
func FromAbsDay(d int64) Date {
	y, m, dom := astro.JulianFromAbsDay(d)
	return Date{ProlepticYear: y, Month: m, DayOfMonth: dom, absDay: d}
}

func lengthOfMonth(year, month int) int {
	lengths := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && astro.IsJulianLeapYear(year) {
		return 29
	}
	return lengths[month-1]
}

// ToAbsDay implements chronolib.CalendarSystem.
func (d Date) ToAbsDay() chronolib.AbsDay { return chronolib.AbsDay(d.absDay) }

// DayOfWeek returns the Monday-first weekday of d.
func (d Date) DayOfWeek() chronolib.Weekday { return chronolib.DayOfWeek(chronolib.AbsDay(d.absDay)) }

// LengthOfMonth implements chronolib.CalendarSystem.
func (d Date) LengthOfMonth() int { return lengthOfMonth(d.ProlepticYear, d.Month) }

// DayOfYear returns d's 1-based ordinal day within its Julian year.
func (d Date) DayOfYear() int {
	total := d.DayOfMonth
	for m := 1; m < d.Month; m++ {
		total += lengthOfMonth(d.ProlepticYear, m)
	}
	return total
}

// IsLeapYear implements chronolib.CalendarSystem: prolepticYear mod
// 4 == 0.
func (d Date) IsLeapYear() bool { return astro.IsJulianLeapYear(d.ProlepticYear) }

// LengthOfYear implements chronolib.CalendarSystem.
func (d Date) LengthOfYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// Compare orders two Julian dates by absolute day.
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
