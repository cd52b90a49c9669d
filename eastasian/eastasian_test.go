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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

func TestJiaZiEpoch(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	assert.Equal(t, 78, dt.Cycle)
	assert.Equal(t, 1, dt.YearOfCycle)
	assert.Equal(t, Month{Number: 1, Leap: false}, dt.Month)
	assert.Equal(t, 1, dt.DayOfMonth)
	cy, err := CyclicYearOf(dt.YearOfCycle)
	require.NoError(t, err)
	assert.Equal(t, "jia-zi", cy.DisplayName())
}

func TestBijection(t *testing.T) {
	start := astro.AbsDayFromGregorian(1700, 1, 1)
	end := astro.AbsDayFromGregorian(2100, 1, 1)
	step := int64(37)
	for d := start; d < end; d += step {
		dt, err := ToDate(China, d)
		require.NoError(t, err)
		assert.Equal(t, d, dt.absDay)
	}
}

func TestRoundTripOf(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	back, err := Of(China, dt.Cycle, dt.YearOfCycle, dt.Month, dt.DayOfMonth)
	require.NoError(t, err)
	assert.Equal(t, chronolib.AbsDay(d), back.ToAbsDay())
}

func TestLeapMonthUniqueness(t *testing.T) {
	start := astro.AbsDayFromGregorian(1900, 1, 1)
	end := astro.AbsDayFromGregorian(2000, 1, 1)
	seenLeap := map[string]bool{}
	for d := start; d < end; d += 29 {
		dt, err := ToDate(China, d)
		require.NoError(t, err)
		if dt.Month.Leap {
			key := keyFor(dt.Cycle, dt.YearOfCycle)
			seenLeap[key] = true
			assert.Equal(t, dt.Month.Number, dt.leapMonthOfYear)
		}
	}
}

func keyFor(cycle, yearOfCycle int) string {
	return string(rune(cycle)) + "-" + string(rune(yearOfCycle))
}

func TestWeekdayCoherence(t *testing.T) {
	d1 := astro.AbsDayFromGregorian(1984, 2, 2)
	d2 := d1 + 21
	assert.Equal(t, chronolib.DayOfWeek(chronolib.AbsDay(d1)), chronolib.DayOfWeek(chronolib.AbsDay(d2)))
}

func TestAddMonthsClampsDayOfMonth(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	next, err := dt.AddMonths(1)
	require.NoError(t, err)
	assert.True(t, next.absDay > dt.absDay)
}

func TestAddMonthsOverflow(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	_, err = dt.AddMonths(1201)
	require.Error(t, err)
}

func TestCyclicYearRoundTrip(t *testing.T) {
	for y := 1; y <= 60; y++ {
		cy, err := CyclicYearOf(y)
		require.NoError(t, err)
		stem, branch := cy.Stem(), cy.Branch()
		assert.Equal(t, (y-1)%10, stem)
		assert.Equal(t, (y-1)%12, branch)
		if (branch-stem)%2 == 0 {
			recovered, err := OfStemBranch(stem, branch)
			require.NoError(t, err)
			assert.Equal(t, cy, recovered)
		}
	}
}

func TestKangxiAmbivalence(t *testing.T) {
	cy, err := CyclicYearOf(39)
	require.NoError(t, err)
	_, err = cy.InQingDynasty(Kangxi)
	require.Error(t, err)
	cherr, ok := err.(*chronolib.Error)
	require.True(t, ok)
	assert.Equal(t, chronolib.Ambivalent, cherr.Kind)
}

func TestDayOfYearAndGet(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	assert.Equal(t, 1, dt.DayOfYear())
	cycle, err := dt.Get(chronolib.ElementCycle)
	require.NoError(t, err)
	assert.Equal(t, int64(dt.Cycle), cycle)
}

func TestPlusUntilUnits(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	next, err := dt.Plus(1, chronolib.UnitYears)
	require.NoError(t, err)
	years, err := dt.Until(next, chronolib.UnitYears)
	require.NoError(t, err)
	assert.Equal(t, int64(1), years)
}

func TestRollCyclicYear(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	dt, err := ToDate(China, d)
	require.NoError(t, err)
	rolled, err := dt.Roll(60)
	require.NoError(t, err)
	assert.Equal(t, dt.YearOfCycle, rolled.YearOfCycle)
	assert.Equal(t, dt.Cycle, rolled.Cycle)
}
