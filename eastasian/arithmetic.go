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

// maxMonthStep bounds addMonths to a "|n| <= 1200" limit.
const maxMonthStep = 1200

// AddDays returns the date n days after d.
func (d Date) AddDays(n int64) (Date, error) {
	return ToDate(d.system, d.absDay+n)
}

// AddWeeks returns the date 7n days after d.
func (d Date) AddWeeks(n int64) (Date, error) {
	return d.AddDays(7 * n)
}

// AddMonths steps the date forward or backward by n lunisolar months,
// preserving DayOfMonth (clamped to the destination month's length).
func (d Date) AddMonths(n int) (Date, error) {
	if n > maxMonthStep || n < -maxMonthStep {
		return Date{}, chronolib.NewError(chronolib.Overflow, "addMonths(%d) exceeds the %d-month limit", n, maxMonthStep)
	}
	monthStart := d.absDay - int64(d.DayOfMonth) + 1
	step := n
	for step > 0 {
		monthStart = nextNewMoon(d.system, monthStart)
		step--
	}
	for step < 0 {
		monthStart = astro.NewMoonBefore(monthStart, d.system.Offset(monthStart))
		step++
	}
	length := int(nextNewMoon(d.system, monthStart) - monthStart)
	dom := d.DayOfMonth
	if dom > length {
		dom = length
	}
	return ToDate(d.system, monthStart+int64(dom)-1)
}

// AddYears shifts the date by n lunisolar years on the (cycle,
// yearOfCycle) linear index, dropping the leap flag if the new year's
// leap month number differs.
func (d Date) AddYears(n int) (Date, error) {
	newCycle, newYearOfCycle := addCycleYearIndex(d.Cycle, d.YearOfCycle, n)
	month := d.Month
	ny, leapMonthOfYear, err := yearContext(d.system, newCycle, newYearOfCycle)
	if err != nil {
		return Date{}, err
	}
	if month.Leap && month.Number != leapMonthOfYear {
		month.Leap = false
	}
	firstDay, err := firstDayOfMonth(d.system, ny, month)
	if err != nil {
		return Date{}, err
	}
	length := int(nextNewMoon(d.system, firstDay) - firstDay)
	dom := d.DayOfMonth
	if dom > length {
		dom = length
	}
	return ToDate(d.system, firstDay+int64(dom)-1)
}

// AddCycles shifts the date by n sexagesimal cycles (60n years).
func (d Date) AddCycles(n int) (Date, error) {
	return d.AddYears(60 * n)
}

// Between measures the signed distance from d to o in the given unit:
// DAYS, WEEKS, MONTHS, or YEARS (chronolib.UnitID values).
func (d Date) Between(o Date, unit chronolib.UnitID) (int64, error) {
	switch unit {
	case chronolib.UnitDays:
		return o.absDay - d.absDay, nil
	case chronolib.UnitWeeks:
		return (o.absDay - d.absDay) / 7, nil
	case chronolib.UnitMonths:
		return monthsBetween(d, o), nil
	case chronolib.UnitYears:
		if d.absDay > o.absDay {
			n, err := o.Between(d, unit)
			return -n, err
		}
		years := int64((o.Cycle-1)*60+o.YearOfCycle) - int64((d.Cycle-1)*60+d.YearOfCycle)
		if years > 0 && (o.Month.Compare(d.Month) < 0 || (o.Month == d.Month && o.DayOfMonth < d.DayOfMonth)) {
			years--
		}
		return years, nil
	default:
		return 0, chronolib.NewError(chronolib.InvalidDate, "unsupported unit %v for east asian dates", unit)
	}
}

// monthsBetween counts whole lunisolar months from d to o by walking
// new-moon boundaries, with a day-of-month tail adjustment, via
// symmetric single-step walking.
func monthsBetween(d, o Date) int64 {
	if d.absDay > o.absDay {
		n := monthsBetween(o, d)
		return -n
	}
	dStart := d.absDay - int64(d.DayOfMonth) + 1
	oStart := o.absDay - int64(o.DayOfMonth) + 1
	var count int64
	cur := dStart
	for cur < oStart {
		cur = nextNewMoon(d.system, cur)
		count++
	}
	if o.DayOfMonth < d.DayOfMonth {
		count--
	}
	return count
}
