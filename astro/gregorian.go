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

// Package astro implements the astronomical primitives the calendar
// engines sit on: the Gregorian/Julian-day bridge used as a reference
// frame, solar longitude, solstice search, and new-moon search.
//
// The module's own day-number timeline (chronolib.AbsDay) has its
// epoch at Gregorian 1972-01-01. Astronomical formulas are naturally
// expressed against Julian Ephemeris Day (JDE), so this file provides
// the Gregorian calendar arithmetic needed to convert between the two,
// the way github.com/soniakeys/meeus's julian package converts between
// a (year, month, day) triple and a Julian day number.
package astro

import "math"

// gregorianEpochJDE is the Julian day number of chronolib.AbsDay 0,
// i.e. of 1972-01-01 at 00:00 UT.
const gregorianEpochJDE = 2441317.5

// daysInGregorianMonth returns the length of a Gregorian month.
func daysInGregorianMonth(month, year int) int {
	lengths := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && isGregorianLeap(year) {
		return 29
	}
	return lengths[month-1]
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// absDayFromGregorian converts a Gregorian (year, month, day) to a day
// count relative to AbsDay 0, via closed-form integer accumulation.
func absDayFromGregorian(year, month, day int) int64 {
	y := int64(year) - 1
	days := int64(day)
	for m := 1; m < month; m++ {
		days += int64(daysInGregorianMonth(m, year))
	}
	days += 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	// shift from the proleptic-Gregorian epoch (year 1, day 1 == day 1)
	// to AbsDay 0 at 1972-01-01.
	return days - gregorianAbsDayOffset
}

// gregorianAbsDayOffset is the proleptic-Gregorian day number
// (0001-01-01 == day 1) of 1972-01-01, computed once so
// absDayFromGregorian/gregorianFromAbsDay share a single constant.
var gregorianAbsDayOffset = computeGregorianAbsDayOffset()

func computeGregorianAbsDayOffset() int64 {
	y := int64(1971)
	days := int64(1)
	days += 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	return days
}

func gregorianFromAbsDay(d int64) (year, month, day int) {
	abs := d + gregorianAbsDayOffset
	d0 := abs - 1
	n400 := floorDiv(d0, 146097)
	d1 := floorMod(d0, 146097)
	n100 := floorDiv(d1, 36524)
	d2 := floorMod(d1, 36524)
	n4 := floorDiv(d2, 1461)
	d3 := floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	y := 400*n400 + 100*n100 + 4*n4 + n1
	if !(n100 == 4 || n1 == 4) {
		y++
	}
	year = int(y)
	m := 1
	for m <= 12 {
		last := daysInGregorianMonth(m, year)
		if d <= absDayFromGregorian(year, m, last) {
			break
		}
		m++
	}
	month = m
	day = int(d - (absDayFromGregorian(year, month, 1) - 1))
	return
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// JDEFromAbsDay converts an AbsDay-relative day count to a Julian
// Ephemeris Day at local midnight, the reference frame the solstice
// and new-moon search functions operate in.
func JDEFromAbsDay(d int64) float64 {
	return float64(d) + gregorianEpochJDE
}

// AbsDayFromJDE converts a JDE back to the nearest AbsDay-relative day
// (floor), the inverse of JDEFromAbsDay.
func AbsDayFromJDE(jde float64) int64 {
	return int64(math.Floor(jde - gregorianEpochJDE))
}

// GregorianYearFromAbsDay returns the Gregorian year containing a
// given AbsDay, used by the winter-solstice search to pick the
// solstice year.
func GregorianYearFromAbsDay(d int64) int {
	y, _, _ := gregorianFromAbsDay(d)
	return y
}

// AbsDayFromGregorian exposes the Gregorian bridge to calendar
// packages that need to anchor a fixed historical date (e.g. the
// Ethiopian Mihret epoch, expressed against the Julian calendar
// instead, or the China lunisolar epoch, expressed against a
// proleptic Gregorian date).
func AbsDayFromGregorian(year, month, day int) int64 {
	return absDayFromGregorian(year, month, day)
}

// GregorianFromAbsDay exposes the inverse bridge.
func GregorianFromAbsDay(d int64) (year, month, day int) {
	return gregorianFromAbsDay(d)
}
