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

package nengo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	decoded, err := Decode(Encode(seedRecords))
	require.NoError(t, err)
	require.Len(t, decoded, len(seedRecords))
	assert.Equal(t, seedRecords[0].Kanji, decoded[0].Kanji)
	assert.Equal(t, seedRecords[len(seedRecords)-1].Romaji, decoded[len(decoded)-1].Romaji)
}

func TestHeiseiByRelatedGregorianYear(t *testing.T) {
	n, err := ByRelatedGregorianYear(1989, Official)
	require.NoError(t, err)
	assert.Equal(t, "平成", n.Kanji)
}

func TestByKanjiShowa(t *testing.T) {
	n, err := ByKanji("昭和")
	require.NoError(t, err)
	assert.Equal(t, 1926, n.FirstRelatedGregorianYear())
}

func TestRomajiPrefixAmbivalence(t *testing.T) {
	matches, err := ByRomajiPrefix("Shōwa")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	var foundModern, foundHistorical bool
	for _, m := range matches {
		switch m.Kanji {
		case "昭和":
			foundModern = true
		case "承和":
			foundHistorical = true
		}
	}
	assert.True(t, foundModern, "expected 昭和 (1926) among Shōwa matches")
	assert.True(t, foundHistorical, "expected 承和 (834), whose historical reading is also Shōwa")
}

func TestSelectorPartition(t *testing.T) {
	for y := 710; y <= 3000; y += 17 {
		n, err := ByRelatedGregorianYear(y, Official)
		if err != nil {
			continue
		}
		assert.True(t, matches(n.Record, Official))
		assert.LessOrEqual(t, n.FirstRelatedGregorianYear(), y)
	}
}

func TestNorthernCourtSelectorExcludesOfficial(t *testing.T) {
	n, err := ByRelatedGregorianYear(1337, NorthernCourt)
	require.NoError(t, err)
	assert.Equal(t, CourtNorthern, n.Court)
}

func TestAbsDayOfValidatesSpan(t *testing.T) {
	n, err := ByKanji("平成")
	require.NoError(t, err)
	d, err := AbsDayOf(n, 1, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, n.StartAbsDayValue(), d)
	_, err = AbsDayOf(n, 1, 1, 1)
	assert.Error(t, err)
}

func TestRegisterSupplementalEraRejectsPreHeisei(t *testing.T) {
	err := RegisterSupplementalEra(SupplementalEra{
		Name:  "Taika II",
		Kanji: "大化二",
		Since: ISODate{1980, 1, 1},
	})
	assert.Error(t, err)
}

func TestRegisterSupplementalEraAccepted(t *testing.T) {
	err := RegisterSupplementalEra(SupplementalEra{
		Name:  "Reiwa Tsugi",
		Kanji: "令和次",
		Since: ISODate{2100, 1, 1},
	})
	require.NoError(t, err)
	n, err := ByKanji("令和次")
	require.NoError(t, err)
	assert.Equal(t, "Reiwa-Tsugi", n.Romaji[0])
}

func TestNormalizeNameCapitalizationAndApostrophe(t *testing.T) {
	assert.Equal(t, "Kan’ei", normalizeName("kan'ei"))
	assert.Equal(t, "Tensho", normalizeName("tensho"))
}
