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

package ethiopian

import "github.com/chronolib/chronolib"

// AddDays returns the date n days after d, in whichever era FromAbsDay
// derives for the resulting day.
func (d Date) AddDays(n int64) Date { return FromAbsDay(d.absDay + n) }

// AddWeeks returns the date 7n days after d.
func (d Date) AddWeeks(n int64) Date { return d.AddDays(7 * n) }

// AddMonths shifts the date by n of the 13 Ethiopian months, clamping
// DayOfMonth to the destination month's length.
func (d Date) AddMonths(n int) Date {
	my := mihretYear(d.Era, d.YearOfEra)
	total := my*13 + int64(d.Month-1) + int64(n)
	newYear := chronolib.FloorDiv(total, 13)
	newMonth := int(chronolib.FloorMod(total, 13)) + 1
	dom := d.DayOfMonth
	if length := lengthOfMonthFor(newYear, newMonth); dom > length {
		dom = length
	}
	dt, _ := Of(d.Era, yearOfEraFromMihret(d.Era, newYear), newMonth, dom)
	return dt
}

// AddYears shifts the date by n Ethiopian years, clamping DayOfMonth
// (relevant for Pagume's 5th/6th day around a leap boundary).
func (d Date) AddYears(n int) Date {
	newYearOfEra := d.YearOfEra + n
	my := mihretYear(d.Era, newYearOfEra)
	dom := d.DayOfMonth
	if length := lengthOfMonthFor(my, d.Month); dom > length {
		dom = length
	}
	dt, _ := Of(d.Era, newYearOfEra, d.Month, dom)
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
		dMy := mihretYear(d.Era, d.YearOfEra)
		oMy := mihretYear(o.Era, o.YearOfEra)
		years := oMy - dMy
		if o.Month < d.Month || (o.Month == d.Month && o.DayOfMonth < d.DayOfMonth) {
			years--
		}
		return years
	default:
		return 0
	}
}

func monthsBetween(d, o Date) int64 {
	dMy := mihretYear(d.Era, d.YearOfEra)
	oMy := mihretYear(o.Era, o.YearOfEra)
	months := (oMy-dMy)*13 + int64(o.Month-d.Month)
	if o.DayOfMonth < d.DayOfMonth {
		months--
	}
	return months
}
