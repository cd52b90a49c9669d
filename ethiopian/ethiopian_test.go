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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

func TestLeapYearHasSixDayPagume(t *testing.T) {
	assert.Equal(t, 3, 2007%4)
	d, err := Of(AmeteMihret, 2007, 13, 6)
	require.NoError(t, err)
	assert.True(t, d.IsLeapYear())
	_, err = Of(AmeteMihret, 2008, 13, 6)
	require.Error(t, err)
}

func TestAmeteMihret2007IsGregorian2014or2015(t *testing.T) {
	d, err := Of(AmeteMihret, 2007, 1, 1)
	require.NoError(t, err)
	y, _, _ := astro.GregorianFromAbsDay(int64(d.ToAbsDay()))
	assert.True(t, y == 2014 || y == 2015)
}

func TestEraOffsetAgreement(t *testing.T) {
	mihret, err := Of(AmeteMihret, 100, 1, 1)
	require.NoError(t, err)
	alem, err := Of(AmeteAlem, 100+AmeteAlemOffset, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, mihret.ToAbsDay(), alem.ToAbsDay())
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
	back, err := Of(dt.Era, dt.YearOfEra, dt.Month, dt.DayOfMonth)
	require.NoError(t, err)
	assert.Equal(t, dt, back)
}

// TestFromAbsDayPreIncarnationIsAmeteAlem covers a mihret year before 1,
// which must resolve to the AmeteAlem era rather than a non-positive
// AmeteMihret year-of-era.
func TestFromAbsDayPreIncarnationIsAmeteAlem(t *testing.T) {
	alem, err := Of(AmeteAlem, AmeteAlemOffset-3, 1, 1)
	require.NoError(t, err)
	dt := FromAbsDay(int64(alem.ToAbsDay()))
	assert.Equal(t, AmeteAlem, dt.Era)
	assert.Equal(t, AmeteAlemOffset-3, dt.YearOfEra)
	back, err := Of(dt.Era, dt.YearOfEra, dt.Month, dt.DayOfMonth)
	require.NoError(t, err)
	assert.Equal(t, dt, back)
}

// TestAddMonthsAcrossYearAmeteAlem covers AddMonths when the crossed
// year boundary must round-trip through a mihret year rather than
// double-applying the AmeteAlem offset.
func TestAddMonthsAcrossYearAmeteAlem(t *testing.T) {
	start, err := Of(AmeteAlem, AmeteAlemOffset+99, 12, 1)
	require.NoError(t, err)
	got := start.AddMonths(2)
	want, err := Of(AmeteAlem, AmeteAlemOffset+100, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetWithEraElement(t *testing.T) {
	mihret, err := Of(AmeteMihret, 2007, 1, 1)
	require.NoError(t, err)
	era, err := mihret.Get(chronolib.ElementEra)
	require.NoError(t, err)
	assert.Equal(t, int64(AmeteMihret), era)
	alem, err := mihret.With(chronolib.ElementEra, int64(AmeteAlem), false)
	require.NoError(t, err)
	assert.Equal(t, AmeteAlem, alem.Era)
	assert.Equal(t, mihret.ToAbsDay(), alem.ToAbsDay())
}

func TestPlusUntilRollDayOfYear(t *testing.T) {
	d, err := Of(AmeteMihret, 2007, 1, 1)
	require.NoError(t, err)
	next, err := d.Plus(1, chronolib.UnitYears)
	require.NoError(t, err)
	assert.Equal(t, 2008, next.YearOfEra)
	years, err := d.Until(next, chronolib.UnitYears)
	require.NoError(t, err)
	assert.Equal(t, int64(1), years)

	pagume, err := Of(AmeteMihret, 2007, 13, 6)
	require.NoError(t, err)
	rolled, err := pagume.Roll(1)
	require.NoError(t, err)
	assert.Equal(t, 2007, rolled.YearOfEra)
	assert.Equal(t, 1, rolled.DayOfYear())
}
