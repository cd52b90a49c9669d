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

// Package ethiopian implements the Ethiopian calendar: a 13-month
// year (twelve 30-day months plus the 5- or 6-day Pagume) counted
// from either the AmeteMihret or AmeteAlem era.
package ethiopian

import (
	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// Era identifies the Ethiopian epoch a year is counted from.
type Era int

const (
	// AmeteMihret ("year of mercy") counts from the Incarnation.
	AmeteMihret Era = iota
	// AmeteAlem ("year of the world") counts 5500 years earlier.
	AmeteAlem
)

func (e Era) String() string {
	if e == AmeteAlem {
		return "AmeteAlem"
	}
	return "AmeteMihret"
}

// AmeteAlemOffset is the fixed year offset between the two eras, per
// the glossary's "Era (Ethiopian)" entry.
const AmeteAlemOffset = 5500

// mihretEpoch is the AbsDay of the Julian calendar date AD 8-08-29,
// the epoch the AmeteMihret era counts from.
var mihretEpoch = astro.AbsDayFromJulian(8, 8, 29)

// Date is an immutable Ethiopian calendar date.
type Date struct {
	Era        Era
	YearOfEra  int
	Month      int
	DayOfMonth int
	absDay     int64
}

func mihretYear(era Era, yearOfEra int) int64 {
	if era == AmeteAlem {
		return int64(yearOfEra) - AmeteAlemOffset
	}
	return int64(yearOfEra)
}

// yearOfEraFromMihret is the inverse of mihretYear: it converts a
// mihret year back into the year-of-era value Of expects for era.
func yearOfEraFromMihret(era Era, mihretYr int64) int {
	if era == AmeteAlem {
		return int(mihretYr + AmeteAlemOffset)
	}
	return int(mihretYr)
}

// eraFromMihretYear derives the era and year-of-era a mihret year
// belongs to: mihret years before 1 are AmeteAlem years, counted 5500
// years earlier.
func eraFromMihretYear(mihretYr int64) (Era, int) {
	if mihretYr < 1 {
		return AmeteAlem, yearOfEraFromMihret(AmeteAlem, mihretYr)
	}
	return AmeteMihret, int(mihretYr)
}

// lengthOfMonthFor returns the number of days in a given Ethiopian
// month of mihretYear: 30 for months 1-12, and for month 13 (Pagume)
// 6 if the year is leap (mihretYear mod 4 == 3) else 5.
func lengthOfMonthFor(mihretYr int64, month int) int {
	if month < 13 {
		return 30
	}
	if chronolib.FloorMod(mihretYr, 4) == 3 {
		return 6
	}
	return 5
}

// Of constructs a validated Ethiopian Date.
func Of(era Era, yearOfEra, month, dayOfMonth int) (Date, error) {
	if month < 1 || month > 13 {
		return Date{}, chronolib.NewError(chronolib.OutOfRange, "ethiopian month %d out of range [1,13]", month)
	}
	my := mihretYear(era, yearOfEra)
	length := lengthOfMonthFor(my, month)
	if dayOfMonth < 1 || dayOfMonth > length {
		return Date{}, chronolib.NewError(chronolib.InvalidDate, "ethiopian %v %d-%02d has no day %d (month has %d days)", era, yearOfEra, month, dayOfMonth, length)
	}
	d := mihretEpoch - 1 + 365*(my-1) + chronolib.FloorDiv(my, 4) + 30*int64(month-1) + int64(dayOfMonth)
	return Date{Era: era, YearOfEra: yearOfEra, Month: month, DayOfMonth: dayOfMonth, absDay: d}, nil
}

// FromAbsDay reconstructs the Ethiopian date containing d via the
// inverse of the Of formula, resolving era from the mihret year.
func FromAbsDay(d int64) Date {
	my := chronolib.FloorDiv(4*(d-mihretEpoch)+1463, 1461)
	yearStart := mihretEpoch - 1 + 365*(my-1) + chronolib.FloorDiv(my, 4)
	dayOfYear := int(d - yearStart)
	month := 1
	remaining := dayOfYear
	for month < 13 {
		length := lengthOfMonthFor(my, month)
		if remaining <= length {
			break
		}
		remaining -= length
		month++
	}
	era, yearOfEra := eraFromMihretYear(my)
	return Date{Era: era, YearOfEra: yearOfEra, Month: month, DayOfMonth: remaining, absDay: d}
}

// ToAbsDay implements chronolib.CalendarSystem.
func (d Date) ToAbsDay() chronolib.AbsDay { return chronolib.AbsDay(d.absDay) }

// DayOfWeek returns the Monday-first weekday of d.
func (d Date) DayOfWeek() chronolib.Weekday { return chronolib.DayOfWeek(chronolib.AbsDay(d.absDay)) }

// LengthOfMonth implements chronolib.CalendarSystem.
func (d Date) LengthOfMonth() int {
	return lengthOfMonthFor(mihretYear(d.Era, d.YearOfEra), d.Month)
}

// DayOfYear returns d's 1-based ordinal day within its Ethiopian year.
func (d Date) DayOfYear() int {
	my := mihretYear(d.Era, d.YearOfEra)
	total := d.DayOfMonth
	for m := 1; m < d.Month; m++ {
		total += lengthOfMonthFor(my, m)
	}
	return total
}

// IsLeapYear implements chronolib.CalendarSystem: yearOfEra mod 4 == 3.
func (d Date) IsLeapYear() bool {
	return chronolib.FloorMod(mihretYear(d.Era, d.YearOfEra), 4) == 3
}

// LengthOfYear implements chronolib.CalendarSystem.
func (d Date) LengthOfYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// Compare orders two Ethiopian dates by absolute day.
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
