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

package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGregorianRoundTrip(t *testing.T) {
	cases := []struct{ y, m, d int }{
		{1972, 1, 1},
		{2000, 2, 29},
		{1984, 2, 2},
		{2024, 12, 31},
		{1645, 1, 28},
		{3000, 1, 27},
	}
	for _, c := range cases {
		abs := AbsDayFromGregorian(c.y, c.m, c.d)
		y, m, d := GregorianFromAbsDay(abs)
		assert.Equal(t, c.y, y, "year for %v", c)
		assert.Equal(t, c.m, m, "month for %v", c)
		assert.Equal(t, c.d, d, "day for %v", c)
	}
}

func TestEpochIsAbsDayZero(t *testing.T) {
	assert.Equal(t, int64(0), AbsDayFromGregorian(1972, 1, 1))
}

func TestWinterSolsticeMonotone(t *testing.T) {
	d := AbsDayFromGregorian(1984, 6, 1)
	first := WinterSolsticeOnOrBefore(d, 480)
	second := WinterSolsticeOnOrBefore(d+370, 480)
	assert.Greater(t, second, first)
	assert.LessOrEqual(t, first, d)
}

func TestNewMoonSearchMonotoneAndConsistent(t *testing.T) {
	d := AbsDayFromGregorian(1984, 2, 2)
	after := NewMoonOnOrAfter(d, 480)
	before := NewMoonBefore(d, 480)
	assert.LessOrEqual(t, d, after)
	assert.Less(t, before, d)
	assert.True(t, after-before > 27 && after-before < 31, "consecutive new moons within a synodic month, got %d", after-before)
}

func TestLunationsRoundTrip(t *testing.T) {
	d := AbsDayFromGregorian(1984, 1, 1)
	m1 := NewMoonOnOrAfter(d, 480)
	m2 := NewMoonOnOrAfter(m1+1, 480)
	assert.Equal(t, int64(1), Lunations(m1, m2))
}

func TestCheckWindow(t *testing.T) {
	assert.NoError(t, CheckWindow(int64(SupportedWindowMinAbsDay)))
	assert.NoError(t, CheckWindow(int64(SupportedWindowMaxAbsDay)))
	assert.Error(t, CheckWindow(int64(SupportedWindowMinAbsDay)-1))
	assert.Error(t, CheckWindow(int64(SupportedWindowMaxAbsDay)+1))
}
