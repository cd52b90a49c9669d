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

package astro

// This file is named julian.go (not gregorian.go) because it bridges
// the proleptic Julian calendar, not Julian Ephemeris Day — see
// JDEFromAbsDay in gregorian.go for that bridge. Kept here so the
// julian and ethiopian calendar packages share one Julian-day-count
// implementation instead of each re-deriving the shifted-year
// accumulation.

func daysInJulianMonth(month, year int) int {
	lengths := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && year%4 == 0 {
		return 29
	}
	return lengths[month-1]
}

// IsJulianLeapYear implements the proleptic Julian leap rule:
// year mod 4 == 0.
func IsJulianLeapYear(year int) bool { return year%4 == 0 }

func julianRawCount(year, month, day int) int64 {
	y := int64(year) - 1
	days := int64(day)
	for m := 1; m < month; m++ {
		days += int64(daysInJulianMonth(m, year))
	}
	days += 365*y + floorDiv(y, 4)
	return days
}

// julianAbsDayOffset anchors the proleptic Julian day count to AbsDay
// using the Gregorian calendar reform: 1582-10-04 (Julian) was
// immediately followed by 1582-10-15 (Gregorian) — the same two
// consecutive absolute days in both calendars. Computed once so
// AbsDayFromJulian/JulianFromAbsDay share a single constant, the same
// pattern as gregorianAbsDayOffset.
var julianAbsDayOffset = computeJulianAbsDayOffset()

func computeJulianAbsDayOffset() int64 {
	lastJulianDay := absDayFromGregorian(1582, 10, 15) - 1
	return julianRawCount(1582, 10, 4) - lastJulianDay
}

// AbsDayFromJulian converts a proleptic Julian (year, month, day) to
// an AbsDay.
func AbsDayFromJulian(year, month, day int) int64 {
	return julianRawCount(year, month, day) - julianAbsDayOffset
}

// JulianFromAbsDay converts an AbsDay to its proleptic Julian (year,
// month, day), inverting the per-year accumulation of AbsDayFromJulian
// by estimating the year from the 4-year/1461-day average and walking
// month lengths within it.
func JulianFromAbsDay(d int64) (year, month, day int) {
	raw := d + julianAbsDayOffset
	y := floorDiv(4*(raw-1)+1464, 1461)
	dayOfYear := raw - (365*(y-1) + floorDiv(y-1, 4))
	m := 1
	remaining := dayOfYear
	for m <= 12 {
		length := int64(daysInJulianMonth(m, int(y)))
		if remaining <= length {
			break
		}
		remaining -= length
		m++
	}
	year = int(y)
	month = m
	day = int(remaining)
	return
}
