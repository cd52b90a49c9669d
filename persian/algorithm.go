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

// Package persian implements the Persian solar (Jalali) calendar:
// four interchangeable leap-year algorithms sharing one month-length
// table, with calendar values stored in the Borkowski representation
// and re-derivable under any of the four.
package persian

import (
	"math"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// Algorithm is the closed set of Persian leap-year rules.
type Algorithm int

const (
	// Borkowski is the refined-astronomical rule, valid years 1..3000.
	Borkowski Algorithm = iota
	// Khayyam is the y mod 33 rule, valid years 1..3000.
	Khayyam
	// Birashk is the 2820-year grand-cycle rule, valid years 1..3000.
	Birashk
	// Astronomical computes leap years directly from the vernal
	// equinox at a caller-supplied offset, valid years 1..2378.
	Astronomical
)

func (a Algorithm) String() string {
	switch a {
	case Borkowski:
		return "Borkowski"
	case Khayyam:
		return "Khayyam"
	case Birashk:
		return "Birashk"
	case Astronomical:
		return "Astronomical"
	default:
		return "Unknown"
	}
}

// TehranOffsetMinutes is the default +03:30 offset used for the
// Astronomical algorithm.
const TehranOffsetMinutes = 210

// tehranMeridianMinutes is Tehran's local mean time (51.4°E, four
// minutes per degree), the day and noon reference of the Borkowski rule.
const tehranMeridianMinutes = 206

// persianEpoch is the AbsDay of the Persian calendar's first day,
// Farvardin 1, year 1 — the Julian calendar date 622-03-19, the
// anchor used throughout the calendrical-calculations literature.
var persianEpoch = astro.AbsDayFromJulian(622, 3, 19)

// gregorianYearFor estimates the Gregorian year in which Persian year
// y's Nowruz falls.
func gregorianYearFor(y int) int { return y + 621 }

// maxYear returns the validity upper bound for algo.
func maxYear(algo Algorithm) int {
	if algo == Astronomical {
		return 2378
	}
	return 3000
}

func validateYear(algo Algorithm, y int) error {
	if y < 1 || y > maxYear(algo) {
		return chronolib.NewError(chronolib.OutOfRange, "persian year %d out of range [1,%d] for %v", y, maxYear(algo), algo)
	}
	return nil
}

// IsLeapYear reports whether Persian year y is a leap (366-day) year
// under algo, localized to offsetMinutes (only meaningful for
// Astronomical; Borkowski always uses Tehran's meridian).
func IsLeapYear(algo Algorithm, y int, offsetMinutes int) bool {
	switch algo {
	case Khayyam:
		return isKhayyamLeap(y)
	case Birashk:
		return isBirashkLeap(y)
	case Borkowski:
		return vernalYearLength(y, tehranMeridianMinutes) == 366
	case Astronomical:
		return vernalYearLength(y, offsetMinutes) == 366
	default:
		return false
	}
}

var khayyamLeapRemainders = map[int]bool{1: true, 5: true, 9: true, 13: true, 17: true, 22: true, 26: true, 30: true}

func isKhayyamLeap(y int) bool {
	return khayyamLeapRemainders[int(chronolib.FloorMod(int64(y), 33))]
}

func isBirashkLeap(y int) bool {
	return chronolib.FloorMod((chronolib.FloorMod(int64(y)-474, 2820)+512)*31, 128) < 31
}

// vernalEquinoxAbsDay returns the AbsDay on which Persian year y
// begins under the astronomical new-year rule: the local calendar day
// of the vernal equinox preceding it, rolled forward one day if the
// equinox instant falls after local noon.
func vernalEquinoxAbsDay(y int, offsetMinutes int) int64 {
	jde := astro.MarchEquinoxJDE(gregorianYearFor(y))
	day := astro.LocalAbsDay(jde, offsetMinutes)
	localJDE := jde + float64(offsetMinutes)/1440.0
	noonJDE := math.Floor(localJDE-0.5) + 0.5 + 0.5
	if localJDE > noonJDE {
		day++
	}
	return day
}

func vernalYearLength(y int, offsetMinutes int) int64 {
	return vernalEquinoxAbsDay(y+1, offsetMinutes) - vernalEquinoxAbsDay(y, offsetMinutes)
}

// yearStart returns the AbsDay of Farvardin 1 of Persian year y under
// algo.
func yearStart(algo Algorithm, y int, offsetMinutes int) int64 {
	switch algo {
	case Borkowski:
		return vernalEquinoxAbsDay(y, tehranMeridianMinutes)
	case Astronomical:
		return vernalEquinoxAbsDay(y, offsetMinutes)
	default:
		return arithmeticYearStart(algo, y)
	}
}

// arithmeticYearStart accumulates whole-year lengths from the shared
// Persian epoch for the two closed-form algorithms. Years are bounded
// to [1,3000] by validateYear, so a direct O(y) accumulation is simple
// and fast enough; it is not a performance-critical path.
func arithmeticYearStart(algo Algorithm, y int) int64 {
	total := persianEpoch
	for k := 1; k < y; k++ {
		total += 365
		if IsLeapYear(algo, k, 0) {
			total++
		}
	}
	return total
}

// lengthOfMonth returns the day count of Persian month m.
func lengthOfMonth(leapYear bool, m int) int {
	switch {
	case m <= 6:
		return 31
	case m <= 11:
		return 30
	case leapYear:
		return 30
	default:
		return 29
	}
}

// fromDate converts a valid (y,m,dom) to an AbsDay under algo.
func fromDate(algo Algorithm, y, m, dom, offsetMinutes int) int64 {
	ys := yearStart(algo, y, offsetMinutes)
	dayOfYear := 0
	for i := 1; i < m; i++ {
		dayOfYear += lengthOfMonth(IsLeapYear(algo, y, offsetMinutes), i)
	}
	return ys + int64(dayOfYear+dom) - 1
}

// toDate converts an AbsDay to (y,m,dom) under algo.
func toDate(algo Algorithm, d int64, offsetMinutes int) (year, month, dayOfMonth int) {
	approxY := int(math.Floor(float64(d-persianEpoch)/365.2425)) + 1
	y := approxY
	for yearStart(algo, y, offsetMinutes) > d {
		y--
	}
	for yearStart(algo, y+1, offsetMinutes) <= d {
		y++
	}
	dayOfYear := int(d - yearStart(algo, y, offsetMinutes) + 1)
	leap := IsLeapYear(algo, y, offsetMinutes)
	m := 1
	remaining := dayOfYear
	for m < 12 {
		length := lengthOfMonth(leap, m)
		if remaining <= length {
			break
		}
		remaining -= length
		m++
	}
	return y, m, remaining
}
