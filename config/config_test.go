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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSupplementalEraFullRecord(t *testing.T) {
	era, err := ParseSupplementalEra("name=Reiwa Tsugi,kanji=次和,since=2100-01-01,chinese=次和,korean=지와,russian=Цзива")
	require.NoError(t, err)
	assert.Equal(t, "Reiwa Tsugi", era.Name)
	assert.Equal(t, "次和", era.Kanji)
	assert.Equal(t, 2100, era.Since.Year)
	assert.Equal(t, "지와", era.Korean)
}

func TestParseSupplementalEraMinimalRecord(t *testing.T) {
	era, err := ParseSupplementalEra("name=Test,kanji=試験,since=1990-06-15")
	require.NoError(t, err)
	assert.Equal(t, "", era.Chinese)
}

func TestParseSupplementalEraRejectsPreHeisei(t *testing.T) {
	_, err := ParseSupplementalEra("name=Test,kanji=試験,since=1980-01-01")
	assert.Error(t, err)
}

func TestParseSupplementalEraRejectsWrongKanjiLength(t *testing.T) {
	_, err := ParseSupplementalEra("name=Test,kanji=試,since=1990-01-01")
	assert.Error(t, err)
}

func TestParseSupplementalEraRejectsUnrecognizedKey(t *testing.T) {
	_, err := ParseSupplementalEra("name=Test,kanji=試験,since=1990-01-01,bogus=x")
	assert.Error(t, err)
}

func TestParseSupplementalEraRejectsMissingName(t *testing.T) {
	_, err := ParseSupplementalEra("kanji=試験,since=1990-01-01")
	assert.Error(t, err)
}
