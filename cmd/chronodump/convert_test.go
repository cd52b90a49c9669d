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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolib/chronolib/astro"
)

func TestRenderCalendarGregorian(t *testing.T) {
	line, err := renderCalendar("gregorian", 0)
	require.NoError(t, err)
	assert.Equal(t, "1972-01-01", line)
}

func TestRenderCalendarChinaNewCycle(t *testing.T) {
	d := astro.AbsDayFromGregorian(1984, 2, 2)
	line, err := renderCalendar("china", d)
	require.NoError(t, err)
	assert.Contains(t, line, "cycle 78")
}

func TestResolveNengoByKanji(t *testing.T) {
	n, err := resolveNengo("平成")
	require.NoError(t, err)
	assert.Equal(t, "平成", n.Kanji)
}
