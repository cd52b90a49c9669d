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
	"math"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// suiInfo holds the winter-solstice/new-moon skeleton of the sui (the
// year running winter-solstice to winter-solstice) containing a probe
// day.
type suiInfo struct {
	s1, s2, m12, nextM11 int64
	leapYearInSui        bool
}

// computeSui builds the suiInfo anchored on the sui containing probe.
func computeSui(sys *System, probe int64, offset int) suiInfo {
	s1 := astro.WinterSolsticeOnOrBefore(probe, offset)
	s2 := astro.WinterSolsticeOnOrBefore(s1+370, offset)
	m12 := astro.NewMoonOnOrAfter(s1+1, offset)
	nextM11 := astro.NewMoonBefore(s2+1, offset)
	return suiInfo{
		s1: s1, s2: s2, m12: m12, nextM11: nextM11,
		leapYearInSui: astro.Lunations(m12, nextM11) == 12,
	}
}

// hasNoMajorSolarTerm reports whether the synodic month opening on m
// contains no zhongqi, the leap-month test.
func hasNoMajorSolarTerm(sys *System, m int64, offset int) bool {
	next := astro.NewMoonOnOrAfter(m+1, offset)
	return astro.SolarLongitudeIndexMajor(m, offset) == astro.SolarLongitudeIndexMajor(next, offset)
}

// leapMonthNumberInSui walks the months of a leap sui from m12 (month
// 12) forward, returning the number of the first no-major-solar-term
// month found (a leap month carries the number of the month before
// it), or 0 if the sui is not a leap sui.
func leapMonthNumberInSui(sys *System, sui suiInfo, offset int) int {
	if !sui.leapYearInSui {
		return 0
	}
	cur := sui.m12
	monthIdx := 12
	for cur < sui.nextM11 {
		if hasNoMajorSolarTerm(sys, cur, offset) {
			return chronolibMod12(monthIdx - 1)
		}
		cur = astro.NewMoonOnOrAfter(cur+1, offset)
		monthIdx++
	}
	return 0
}

func chronolibMod12(monthIdx int) int {
	return int(chronolib.FloorMod(int64(monthIdx-1), 12)) + 1
}

// ToDate reconstructs the East Asian date for AbsDay d under sys,
// following the traditional sui/zhongqi state machine.
func ToDate(sys *System, d int64) (Date, error) {
	if err := astro.CheckWindow(d); err != nil {
		return Date{}, chronolib.WrapError(chronolib.OutOfRange, err, "absday %d outside the East Asian engine's supported window", d)
	}
	offset := sys.Offset(d)
	sui := computeSui(sys, d, offset)
	m := astro.NewMoonBefore(d+1, offset)
	me := astro.Lunations(sui.m12, m)

	hasPriorLeap := false
	if sui.leapYearInSui {
		cur := sui.m12
		for cur < m {
			if hasNoMajorSolarTerm(sys, cur, offset) {
				hasPriorLeap = true
				break
			}
			cur = astro.NewMoonOnOrAfter(cur+1, offset)
		}
	}
	leap := sui.leapYearInSui && hasNoMajorSolarTerm(sys, m, offset) && !hasPriorLeap
	if hasPriorLeap || leap {
		me--
	}

	monthNumber := int(chronolib.FloorMod(me, 12))
	if monthNumber == 0 {
		monthNumber = 12
	}

	elapsedYears := int64(math.Floor(1.5 - float64(monthNumber)/12 + float64(d-int64(epochChinese))/astro.MeanTropicalYear))
	cycle := int(chronolib.FloorDiv(elapsedYears-1, 60)) + 1
	yearOfCycle := int(chronolib.FloorMod(elapsedYears, 60))
	if yearOfCycle == 0 {
		yearOfCycle = 60
	}

	leapMonthOfYear := leapMonthNumberInSui(sys, sui, offset)

	return Date{
		system:          sys,
		Cycle:           cycle,
		YearOfCycle:     yearOfCycle,
		Month:           Month{Number: monthNumber, Leap: leap},
		DayOfMonth:      int(d - m + 1),
		absDay:          d,
		leapMonthOfYear: leapMonthOfYear,
	}, nil
}

// newYearInSui implements step 2 of the "AD from date" state machine:
// the new-year day of the sui containing probe, applying the zhongqi
// skip rule.
func newYearInSui(sys *System, probe int64, offset int) int64 {
	sui := computeSui(sys, probe, offset)
	m13 := astro.NewMoonOnOrAfter(sui.m12+1, offset)
	if sui.leapYearInSui && (hasNoMajorSolarTerm(sys, sui.m12, offset) || hasNoMajorSolarTerm(sys, m13, offset)) {
		return astro.NewMoonOnOrAfter(m13+1, offset)
	}
	return m13
}

// newYearOnly computes the new-year AbsDay for (cycle, yearOfCycle),
// without resolving the year's leap-month number.
func newYearOnly(sys *System, cycle, yearOfCycle int) (int64, error) {
	if cycle < 1 {
		return 0, chronolib.NewError(chronolib.OutOfRange, "cycle %d must be >= 1", cycle)
	}
	if yearOfCycle < 1 || yearOfCycle > 60 {
		return 0, chronolib.NewError(chronolib.OutOfRange, "yearOfCycle %d out of range [1,60]", yearOfCycle)
	}
	elapsed := float64(cycle-1)*60 + float64(yearOfCycle) - 0.5
	midYear := float64(epochChinese) + elapsed*astro.MeanTropicalYear
	probe := int64(math.Floor(midYear))
	offset := sys.Offset(probe)
	ny := newYearInSui(sys, probe, offset)
	if probe < ny {
		ny = newYearInSui(sys, probe-378, offset)
	}
	return ny, nil
}

// yearContext resolves both the new-year AbsDay and the leap-month
// number (0 if none) for (cycle, yearOfCycle).
func yearContext(sys *System, cycle, yearOfCycle int) (int64, int, error) {
	ny, err := newYearOnly(sys, cycle, yearOfCycle)
	if err != nil {
		return 0, 0, err
	}
	offset := sys.Offset(ny)
	sui := computeSui(sys, ny, offset)
	return ny, leapMonthNumberInSui(sys, sui, offset), nil
}

// firstDayOfMonth walks forward from the year's new-year day to the
// first day of the target month.
func firstDayOfMonth(sys *System, newYear int64, target Month) (int64, error) {
	offset := sys.Offset(newYear)
	approx := astro.NewMoonOnOrAfter(newYear+int64(target.Number-1)*29, offset)
	dt, err := ToDate(sys, approx)
	if err != nil {
		return 0, err
	}
	if dt.Month != target {
		approx = astro.NewMoonOnOrAfter(approx+1, offset)
	}
	return approx, nil
}

// nextNewMoon returns the first day of the month following the one
// that opens on monthStart.
func nextNewMoon(sys *System, monthStart int64) int64 {
	return astro.NewMoonOnOrAfter(monthStart+1, sys.Offset(monthStart))
}

// addCycleYearIndex shifts (cycle, yearOfCycle) by n years on the
// linear ((cycle-1)*60 + yearOfCycle) index.
func addCycleYearIndex(cycle, yearOfCycle, n int) (int, int) {
	idx := int64(cycle-1)*60 + int64(yearOfCycle-1) + int64(n)
	newCycle := int(chronolib.FloorDiv(idx, 60)) + 1
	newYearOfCycle := int(chronolib.FloorMod(idx, 60)) + 1
	return newCycle, newYearOfCycle
}

// Of constructs a validated Date from its (cycle, yearOfCycle, month,
// dayOfMonth) components.
func Of(sys *System, cycle, yearOfCycle int, month Month, dayOfMonth int) (Date, error) {
	if month.Number < 1 || month.Number > 12 {
		return Date{}, chronolib.NewError(chronolib.OutOfRange, "month number %d out of range [1,12]", month.Number)
	}
	if dayOfMonth < 1 {
		return Date{}, chronolib.NewError(chronolib.OutOfRange, "day of month %d must be >= 1", dayOfMonth)
	}
	ny, leapMonthOfYear, err := yearContext(sys, cycle, yearOfCycle)
	if err != nil {
		return Date{}, err
	}
	if month.Leap && month.Number != leapMonthOfYear {
		return Date{}, chronolib.NewError(chronolib.InvalidDate, "cycle %d year %d has no leap month %d", cycle, yearOfCycle, month.Number)
	}
	firstDay, err := firstDayOfMonth(sys, ny, month)
	if err != nil {
		return Date{}, err
	}
	length := int(nextNewMoon(sys, firstDay) - firstDay)
	if dayOfMonth > length {
		return Date{}, chronolib.NewError(chronolib.InvalidDate, "month %v of cycle %d year %d has only %d days", month, cycle, yearOfCycle, length)
	}
	absDay := firstDay + int64(dayOfMonth) - 1
	return ToDate(sys, absDay)
}
