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

// AddDays returns the date n days after d.
func (d Date) AddDays(n int64) Date { return FromAbsDay(d.absDay + n) }

// AddWeeks returns the date 7n days after d.
func (d Date) AddWeeks(n int64) Date { return d.AddDays(7 * n) }

// AddMonths shifts d by n of the 12 Persian months, clamping
// DayOfMonth to the destination month's length.
func (d Date) AddMonths(n int) Date {
	total := d.ProlepticYear*12 + (d.Month - 1) + n
	newYear := chronolib.FloorDiv(int64(total), 12)
	newMonth := int(chronolib.FloorMod(int64(total), 12)) + 1
	dom := d.DayOfMonth
	if length := lengthOfMonth(IsLeapYear(Borkowski, int(newYear), 0), newMonth); dom > length {
		dom = length
	}
	dt, _ := Of(int(newYear), newMonth, dom)
	return dt
}

// AddYears shifts d by n Persian years, clamping DayOfMonth (relevant
// for Esfand's 29th/30th day around a leap boundary).
func (d Date) AddYears(n int) Date {
	newYear := d.ProlepticYear + n
	dom := d.DayOfMonth
	if length := lengthOfMonth(IsLeapYear(Borkowski, newYear, 0), d.Month); dom > length {
		dom = length
	}
	dt, _ := Of(newYear, d.Month, dom)
	return dt
}

// Between measures the signed distance from d to o in the given unit.
func (d Date) Between(o Date, unit chronolib.UnitID) int64 {
	switch unit {
	case chronolib.UnitDays:
		return o.absDay - d.absDay
	case chronolib.UnitWeeks:
		return (o.absDay - d.absDay) / 7
	case chronolib.UnitMonths:
		return monthsBetween(d, o)
	case chronolib.UnitYears:
		years := int64(o.ProlepticYear - d.ProlepticYear)
		if o.Month < d.Month || (o.Month == d.Month && o.DayOfMonth < d.DayOfMonth) {
			years--
		}
		return years
	default:
		return 0
	}
}

func monthsBetween(d, o Date) int64 {
	months := int64(o.ProlepticYear-d.ProlepticYear)*12 + int64(o.Month-d.Month)
	if o.DayOfMonth < d.DayOfMonth {
		months--
	}
	return months
}
