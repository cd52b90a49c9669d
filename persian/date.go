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

package persian

import "github.com/chronolib/chronolib"

// Date is a Persian solar date, stored canonically under the
// Borkowski algorithm. Use View to re-derive the year/month/day under
// any of the four algorithms.
type Date struct {
	ProlepticYear int
	Month         int
	DayOfMonth    int
	absDay        int64
}

// View is a Persian date re-derived under an algorithm other than the
// canonical Borkowski storage, paired with the offset (relevant to
// Astronomical) used to derive it.
type View struct {
	Algorithm     Algorithm
	OffsetMinutes int
	ProlepticYear int
	Month         int
	DayOfMonth    int
}

// Of constructs the Persian date (year, month, dayOfMonth) under the
// Borkowski algorithm, the package's canonical storage.
func Of(year, month, dayOfMonth int) (Date, error) {
	if err := validateYear(Borkowski, year); err != nil {
		return Date{}, err
	}
	if month < 1 || month > 12 {
		return Date{}, chronolib.NewError(chronolib.OutOfRange, "persian month %d out of range [1,12]", month)
	}
	leap := IsLeapYear(Borkowski, year, 0)
	if dayOfMonth < 1 || dayOfMonth > lengthOfMonth(leap, month) {
		return Date{}, chronolib.NewError(chronolib.OutOfRange, "persian day %d out of range for %d-%02d", dayOfMonth, year, month)
	}
	return Date{
		ProlepticYear: year,
		Month:         month,
		DayOfMonth:    dayOfMonth,
		absDay:        fromDate(Borkowski, year, month, dayOfMonth, TehranOffsetMinutes),
	}, nil
}

// FromAbsDay converts an AbsDay to the Persian date under the
// Borkowski algorithm.
func FromAbsDay(d int64) Date {
	y, m, dom := toDate(Borkowski, d, TehranOffsetMinutes)
	return Date{ProlepticYear: y, Month: m, DayOfMonth: dom, absDay: d}
}

// ViewAs re-derives d under algo, using offsetMinutes for
// Astronomical (ignored by the other three algorithms).
func (d Date) ViewAs(algo Algorithm, offsetMinutes int) View {
	y, m, dom := toDate(algo, d.absDay, offsetMinutes)
	return View{Algorithm: algo, OffsetMinutes: offsetMinutes, ProlepticYear: y, Month: m, DayOfMonth: dom}
}

// ToAbsDay returns the universal day number d denotes.
func (d Date) ToAbsDay() chronolib.AbsDay { return chronolib.AbsDay(d.absDay) }

// DayOfWeek returns d's weekday.
func (d Date) DayOfWeek() chronolib.Weekday { return chronolib.DayOfWeek(chronolib.AbsDay(d.absDay)) }

// LengthOfMonth returns the length in days of d's month.
func (d Date) LengthOfMonth() int {
	return lengthOfMonth(IsLeapYear(Borkowski, d.ProlepticYear, 0), d.Month)
}

// DayOfYear returns d's 1-based ordinal day within its Persian year.
func (d Date) DayOfYear() int {
	leap := IsLeapYear(Borkowski, d.ProlepticYear, 0)
	total := d.DayOfMonth
	for m := 1; m < d.Month; m++ {
		total += lengthOfMonth(leap, m)
	}
	return total
}

// IsLeapYear reports whether d's year is a 366-day year under the
// canonical Borkowski algorithm.
func (d Date) IsLeapYear() bool { return IsLeapYear(Borkowski, d.ProlepticYear, 0) }

// LengthOfYear returns the day count of d's year.
func (d Date) LengthOfYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// Compare orders d and o chronologically.
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
