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

import (
	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// System is the shared East Asian lunisolar engine, parameterized by
// an offset rule — the only calendar-specific parameter. China, Korea,
// Vietnam, and Japan are the four package-level singletons built from
// it.
type System struct {
	Name   string
	offset func(absDay int64) int
}

// Offset returns the zone offset, in minutes east of UTC, used to
// localize astronomical instants for a given AbsDay.
func (s *System) Offset(absDay int64) int { return s.offset(absDay) }

// epochChinese is the AbsDay of proleptic Gregorian -2636-02-15, the
// conventional start of the sexagesimal cycle. Go has no year-zero
// convention conflict here since AbsDayFromGregorian accepts negative
// (BCE, astronomical numbering) years directly.
var epochChinese = chronolib.AbsDay(0)

func init() {
	epochChinese = chronolib.AbsDay(astro.AbsDayFromGregorian(-2636, 2, 15))
}

// China, Korea, Vietnam, and Japan are the four East Asian lunisolar
// calendar singletons, differing only in their zone-offset rule.
// Japan's old lunisolar calendar followed the Chinese leap-month
// convention directly until its 1873 Gregorian switch; this offset
// rule and the shared-with-China leap placement are the resolution
// recorded in DESIGN.md.
var (
	China   = &System{Name: "China", offset: chinaOffset}
	Korea   = &System{Name: "Korea", offset: koreaOffset}
	Vietnam = &System{Name: "Vietnam", offset: vietnamOffset}
	Japan   = &System{Name: "Japan", offset: japanOffset}
)

// chinaOffset implements "LMT of Beijing before 1929-01-01, then
// +08:00". Beijing's LMT is 116°25'E, i.e. UTC +7h45m (465 minutes).
func chinaOffset(absDay int64) int {
	boundary := astro.AbsDayFromGregorian(1929, 1, 1)
	if absDay < boundary {
		return 465
	}
	return 480
}

// koreaOffset implements the successive Korean offset boundaries.
func koreaOffset(absDay int64) int {
	switch {
	case absDay < astro.AbsDayFromGregorian(1908, 4, 1):
		return 508 // LMT 126°58'E ~= UTC+8h28m
	case absDay < astro.AbsDayFromGregorian(1912, 1, 1):
		return 510 // +08:30
	case absDay < astro.AbsDayFromGregorian(1954, 3, 21):
		return 540 // +09:00
	case absDay < astro.AbsDayFromGregorian(1961, 8, 10):
		return 510 // +08:30
	default:
		return 540 // +09:00
	}
}

// vietnamOffset implements "Hanoi LMT -> +07:00 since introduction".
// Hanoi's LMT is 105°51'E ~= UTC+7h03m.
func vietnamOffset(absDay int64) int {
	boundary := astro.AbsDayFromGregorian(1906, 7, 1)
	if absDay < boundary {
		return 423
	}
	return 420
}

// japanOffset uses Tokyo LMT (139°46'E ~= UTC+9h19m) before the
// 1873-01-01 Gregorian switch, then +09:00 afterward.
func japanOffset(absDay int64) int {
	boundary := astro.AbsDayFromGregorian(1873, 1, 1)
	if absDay < boundary {
		return 559
	}
	return 540
}
