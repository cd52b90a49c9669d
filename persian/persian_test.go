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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

func TestLeapYear1403ExistsUnderBorkowski(t *testing.T) {
	d, err := Of(1403, 12, 30)
	require.NoError(t, err)
	assert.True(t, d.IsLeapYear())
}

func TestSameDayUnderBirashkRollsToNextYear(t *testing.T) {
	d, err := Of(1403, 12, 30)
	require.NoError(t, err)
	view := d.ViewAs(Birashk, 0)
	assert.Equal(t, 1404, view.ProlepticYear)
	assert.Equal(t, 1, view.Month)
	assert.Equal(t, 1, view.DayOfMonth)
}

func TestKhayyamBorkowskiAgreementWindow(t *testing.T) {
	for y := 1178; y <= 1633; y++ {
		assert.Equal(t, IsLeapYear(Khayyam, y, 0), IsLeapYear(Borkowski, y, 0), "year %d", y)
	}
}

func TestBijectionBorkowski(t *testing.T) {
	start := astro.AbsDayFromGregorian(1900, 1, 1)
	end := astro.AbsDayFromGregorian(2100, 1, 1)
	for d := start; d < end; d += 137 {
		dt := FromAbsDay(d)
		assert.Equal(t, d, int64(dt.ToAbsDay()))
	}
}

func TestRoundTripOf(t *testing.T) {
	dt := FromAbsDay(astro.AbsDayFromGregorian(1984, 2, 2))
	back, err := Of(dt.ProlepticYear, dt.Month, dt.DayOfMonth)
	require.NoError(t, err)
	assert.Equal(t, dt, back)
}

func TestAstronomicalRejectsYearBeyondValidity(t *testing.T) {
	assert.NoError(t, validateYear(Astronomical, 2378))
	assert.Error(t, validateYear(Astronomical, 2379))
}

func TestAddMonthsClampsEsfand(t *testing.T) {
	d, err := Of(1402, 1, 31)
	require.NoError(t, err)
	next := d.AddMonths(11)
	assert.Equal(t, 12, next.Month)
	assert.LessOrEqual(t, next.DayOfMonth, 30)
}

func TestDayOfYear(t *testing.T) {
	d, err := Of(1402, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 31+1, d.DayOfYear())
}

func TestPlusUntilRollUnits(t *testing.T) {
	d, err := Of(1402, 1, 1)
	require.NoError(t, err)
	next, err := d.Plus(1, chronolib.UnitYears)
	require.NoError(t, err)
	assert.Equal(t, 1403, next.ProlepticYear)
	years, err := d.Until(next, chronolib.UnitYears)
	require.NoError(t, err)
	assert.Equal(t, int64(1), years)
	rolled, err := d.Roll(-1)
	require.NoError(t, err)
	assert.Equal(t, 1402, rolled.ProlepticYear)
	assert.Equal(t, d.LengthOfYear(), rolled.DayOfYear())
}

func TestBirashkGrandCycleHas683LeapYears(t *testing.T) {
	leapCount := 0
	for y := 1; y <= 2820; y++ {
		if isBirashkLeap(y) {
			leapCount++
		}
	}
	assert.Equal(t, 683, leapCount)
}
