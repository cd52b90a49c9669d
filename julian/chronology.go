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

package julian

import "github.com/chronolib/chronolib"

// dateChronology registers the Julian Date fields that admit a uniform
// get/with, in terms of the package's own Of/lengthOfMonth.
var dateChronology = chronolib.NewChronology[Date](
	chronolib.Element[Date]{
		ID:      chronolib.ElementYear,
		Get:     func(d Date) int64 { return int64(d.ProlepticYear) },
		Min:     func(Date) int64 { return -9999 },
		Max:     func(Date) int64 { return 9999 },
		IsValid: func(Date, int64) bool { return true },
		With: func(d Date, v int64, lenient bool) (Date, error) {
			return d.AddYears(int(v) - d.ProlepticYear), nil
		},
	},
	chronolib.Element[Date]{
		ID:      chronolib.ElementMonth,
		Get:     func(d Date) int64 { return int64(d.Month) },
		Min:     func(Date) int64 { return 1 },
		Max:     func(Date) int64 { return 12 },
		IsValid: func(d Date, v int64) bool { return v >= 1 && v <= 12 },
		With: func(d Date, v int64, lenient bool) (Date, error) {
			return d.AddMonths(int(v) - d.Month), nil
		},
	},
	chronolib.Element[Date]{
		ID:  chronolib.ElementDayOfMonth,
		Get: func(d Date) int64 { return int64(d.DayOfMonth) },
		Min: func(Date) int64 { return 1 },
		Max: func(d Date) int64 { return int64(d.LengthOfMonth()) },
		IsValid: func(d Date, v int64) bool {
			return v >= 1 && v <= int64(d.LengthOfMonth())
		},
		With: func(d Date, v int64, lenient bool) (Date, error) {
			dom := int(v)
			if lenient {
				if length := d.LengthOfMonth(); dom > length {
					dom = length
				}
				if dom < 1 {
					dom = 1
				}
			}
			return Of(d.ProlepticYear, d.Month, dom)
		},
	},
	chronolib.Element[Date]{
		ID:  chronolib.ElementDayOfYear,
		Get: func(d Date) int64 { return int64(d.DayOfYear()) },
		Min: func(Date) int64 { return 1 },
		Max: func(d Date) int64 { return int64(d.LengthOfYear()) },
		IsValid: func(d Date, v int64) bool {
			return v >= 1 && v <= int64(d.LengthOfYear())
		},
		With: func(d Date, v int64, lenient bool) (Date, error) {
			return FromAbsDay(d.absDay - int64(d.DayOfYear()) + v), nil
		},
	},
)

// dateUnits registers the Julian Date arithmetic units in terms of the
// package's own AddDays/AddWeeks/AddMonths/AddYears/Between.
var dateUnits = chronolib.NewUnitSet[Date](
	chronolib.Unit[Date]{
		ID:      chronolib.UnitDays,
		AddTo:   func(d Date, n int64) (Date, error) { return d.AddDays(n), nil },
		Between: func(a, b Date) int64 { return a.Between(b, chronolib.UnitDays) },
	},
	chronolib.Unit[Date]{
		ID:      chronolib.UnitWeeks,
		AddTo:   func(d Date, n int64) (Date, error) { return d.AddWeeks(n), nil },
		Between: func(a, b Date) int64 { return a.Between(b, chronolib.UnitWeeks) },
	},
	chronolib.Unit[Date]{
		ID:      chronolib.UnitMonths,
		AddTo:   func(d Date, n int64) (Date, error) { return d.AddMonths(int(n)), nil },
		Between: func(a, b Date) int64 { return a.Between(b, chronolib.UnitMonths) },
	},
	chronolib.Unit[Date]{
		ID:      chronolib.UnitYears,
		AddTo:   func(d Date, n int64) (Date, error) { return d.AddYears(int(n)), nil },
		Between: func(a, b Date) int64 { return a.Between(b, chronolib.UnitYears) },
	},
)

// Get returns the value of element id on d.
func (d Date) Get(id chronolib.ElementID) (int64, error) { return dateChronology.Get(d, id) }

// With returns a copy of d with element id set to newValue.
func (d Date) With(id chronolib.ElementID, newValue int64, lenient bool) (Date, error) {
	return dateChronology.With(d, id, newValue, lenient)
}

// Plus adds amount units of kind unit to d.
func (d Date) Plus(amount int64, unit chronolib.UnitID) (Date, error) {
	return dateUnits.Plus(d, amount, unit)
}

// Until computes the signed distance from d to o in units of unit.
func (d Date) Until(o Date, unit chronolib.UnitID) (int64, error) {
	return dateUnits.Until(d, o, unit)
}

// Roll wraps d's day-of-year within its own year, without carrying
// into the year the way Plus(amount, UnitDays) would.
func (d Date) Roll(amount int64) (Date, error) {
	return dateChronology.Roll(d, chronolib.ElementDayOfYear, amount)
}
