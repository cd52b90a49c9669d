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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

func TestPrecedesGregorianByThirteenDays(t *testing.T) {
	d, err := Of(2017, 2, 15)
	require.NoError(t, err)
	g := astro.AbsDayFromGregorian(2017, 2, 28)
	assert.Equal(t, g, int64(d.ToAbsDay()))
}

func TestLeapRule(t *testing.T) {
	assert.True(t, astro.IsJulianLeapYear(2000))
	assert.True(t, astro.IsJulianLeapYear(1900))
	assert.False(t, astro.IsJulianLeapYear(1901))
	d, _ := Of(1900, 2, 29)
	assert.Equal(t, 366, d.LengthOfYear())
}

func TestBijection(t *testing.T) {
	start := astro.AbsDayFromGregorian(1700, 1, 1)
	end := astro.AbsDayFromGregorian(2100, 1, 1)
	for d := start; d < end; d += 97 {
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

func TestAddMonthsClampsFeb29(t *testing.T) {
	d, err := Of(1900, 1, 31)
	require.NoError(t, err)
	next := d.AddMonths(1)
	assert.Equal(t, 2, next.Month)
	assert.LessOrEqual(t, next.DayOfMonth, 29)
}

func TestDayOfYear(t *testing.T) {
	d, err := Of(2000, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 31+29+1, d.DayOfYear())
}

func TestGetWithElement(t *testing.T) {
	d, err := Of(2000, 3, 1)
	require.NoError(t, err)
	month, err := d.Get(chronolib.ElementMonth)
	require.NoError(t, err)
	assert.Equal(t, int64(3), month)
	withYear, err := d.With(chronolib.ElementYear, 2001, false)
	require.NoError(t, err)
	assert.Equal(t, 2001, withYear.ProlepticYear)
}

func TestPlusUntilUnits(t *testing.T) {
	d, err := Of(2000, 1, 1)
	require.NoError(t, err)
	next, err := d.Plus(14, chronolib.UnitMonths)
	require.NoError(t, err)
	assert.Equal(t, 2001, next.ProlepticYear)
	assert.Equal(t, 3, next.Month)
	months, err := d.Until(next, chronolib.UnitMonths)
	require.NoError(t, err)
	assert.Equal(t, int64(14), months)
}

func TestRollDayOfYear(t *testing.T) {
	d, err := Of(2001, 12, 31)
	require.NoError(t, err)
	rolled, err := d.Roll(1)
	require.NoError(t, err)
	assert.Equal(t, 2001, rolled.ProlepticYear)
	assert.Equal(t, 1, rolled.DayOfYear())
}
