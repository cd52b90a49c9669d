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
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// heiseiStartAbsDay is the earliest date a supplemental era may
// claim: it may not precede Heisei's start, 1989-01-08.
var heiseiStartAbsDay = astro.AbsDayFromGregorian(1989, 1, 8)

type alternateEntry struct {
	key   string
	nengo Nengo
}

type nengoTable struct {
	all          []Nengo
	main         []Nengo
	northern     []Nengo
	byKanji      map[string]Nengo
	byChinese    map[string]Nengo
	koreanIndex  []alternateEntry
	russianIndex []alternateEntry
	romajiIndex  []alternateEntry
}

var (
	table   *nengoTable
	initErr error
)

func init() {
	table, initErr = buildTable(seedRecords)
	if initErr != nil {
		logrus.WithError(initErr).Warn("nengo: table initialization failed")
	}
}

// buildTable is the init-time loader: it encodes the in-memory seed
// records to the packed wire format and decodes them straight back,
// exercising the same Encode/Decode path a genuine go:embed asset
// would go through (see DESIGN.md for why the asset itself is
// authored as Go data rather than a binary testdata file).
func buildTable(records []Record) (*nengoTable, error) {
	decoded, err := Decode(Encode(records))
	if err != nil {
		return nil, err
	}
	t := &nengoTable{
		byKanji:   make(map[string]Nengo, len(decoded)),
		byChinese: make(map[string]Nengo, len(decoded)),
	}
	for i, r := range decoded {
		n := Nengo{Record: r, index: i}
		t.all = append(t.all, n)
		if r.Court == CourtNorthern {
			t.northern = append(t.northern, n)
		} else {
			t.main = append(t.main, n)
		}
		if r.Kanji != "" {
			if _, exists := t.byKanji[r.Kanji]; !exists || r.Court != CourtNorthern {
				t.byKanji[r.Kanji] = n
			}
		}
		if r.Chinese != "" {
			if _, exists := t.byChinese[r.Chinese]; !exists {
				t.byChinese[r.Chinese] = n
			}
		}
		if r.Korean != "" {
			t.koreanIndex = append(t.koreanIndex, alternateEntry{r.Korean, n})
		}
		if r.Russian != "" {
			t.russianIndex = append(t.russianIndex, alternateEntry{r.Russian, n})
		}
		for _, alt := range r.Romaji {
			t.romajiIndex = append(t.romajiIndex, alternateEntry{alt, n})
		}
	}
	sortAlternates(t.koreanIndex)
	sortAlternates(t.russianIndex)
	sortAlternates(t.romajiIndex)
	return t, nil
}

func sortAlternates(entries []alternateEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
}

func checkInit() error {
	if initErr != nil {
		return chronolib.WrapError(chronolib.InitFailed, initErr, "nengo: table unavailable")
	}
	return nil
}

// ByRelatedGregorianYear returns the last nengo matching selector with
// RelGregYear <= y, via binary search.
func ByRelatedGregorianYear(y int, selector Selector) (Nengo, error) {
	if err := checkInit(); err != nil {
		return Nengo{}, err
	}
	filtered := filterSelector(selector)
	idx := sort.Search(len(filtered), func(i int) bool {
		return int(filtered[i].RelGregYear) > y
	})
	if idx == 0 {
		return Nengo{}, chronolib.NewError(chronolib.OutOfRange, "no nengo matches selector before Gregorian year %d", y)
	}
	return filtered[idx-1], nil
}

func filterSelector(selector Selector) []Nengo {
	out := make([]Nengo, 0, len(table.all))
	for _, n := range table.all {
		if matches(n.Record, selector) {
			out = append(out, n)
		}
	}
	return out
}

// ByKanji returns the nengo whose kanji label exactly matches s.
func ByKanji(s string) (Nengo, error) {
	if err := checkInit(); err != nil {
		return Nengo{}, err
	}
	n, ok := table.byKanji[s]
	if !ok {
		return Nengo{}, chronolib.NewError(chronolib.InvalidEra, "unknown nengo kanji %q", s)
	}
	return n, nil
}

// ByChinese returns the nengo whose Chinese label exactly matches s.
func ByChinese(s string) (Nengo, error) {
	if err := checkInit(); err != nil {
		return Nengo{}, err
	}
	n, ok := table.byChinese[s]
	if !ok {
		return Nengo{}, chronolib.NewError(chronolib.InvalidEra, "unknown nengo (Chinese) %q", s)
	}
	return n, nil
}

// ByKoreanPrefix returns every nengo sharing the longest prefix of s
// matched in the Korean-alternate index.
func ByKoreanPrefix(s string) ([]Nengo, error) {
	if err := checkInit(); err != nil {
		return nil, err
	}
	return longestPrefixMatch(table.koreanIndex, s), nil
}

// ByRussianPrefix returns every nengo sharing the longest prefix of s
// matched in the Russian-alternate index.
func ByRussianPrefix(s string) ([]Nengo, error) {
	if err := checkInit(); err != nil {
		return nil, err
	}
	return longestPrefixMatch(table.russianIndex, s), nil
}

// ByRomajiPrefix returns every nengo sharing the longest prefix of s
// matched in the romaji-alternate index — "Shōwa" is a real-world
// instance, naming both the 1926 era and, as 承和's historical
// alternate reading, the 834 era.
func ByRomajiPrefix(s string) ([]Nengo, error) {
	if err := checkInit(); err != nil {
		return nil, err
	}
	return longestPrefixMatch(table.romajiIndex, s), nil
}

// longestPrefixMatch is a plain sorted-slice binary search for the
// longest prefix of query that is itself a prefix of at least one
// indexed key, in place of a ternary search tree.
func longestPrefixMatch(index []alternateEntry, query string) []Nengo {
	for l := len(query); l > 0; l-- {
		prefix := query[:l]
		lo := sort.Search(len(index), func(i int) bool { return index[i].key >= prefix })
		hi := sort.Search(len(index), func(i int) bool { return index[i].key >= prefix+"￿" })
		if hi > lo {
			result := make([]Nengo, 0, hi-lo)
			seen := make(map[int]bool, hi-lo)
			for _, e := range index[lo:hi] {
				if !seen[e.nengo.index] {
					seen[e.nengo.index] = true
					result = append(result, e.nengo)
				}
			}
			return result
		}
	}
	return nil
}

// nextStartAbsDay returns the AbsDay on which the era following n
// begins, or AbsDay max-bound if n is the most recent era in its
// list.
func nextStartAbsDay(n Nengo) int64 {
	list := table.main
	if n.Court == CourtNorthern {
		list = table.northern
	}
	for _, candidate := range list {
		if candidate.StartAbsDayValue() > n.StartAbsDayValue() {
			return candidate.StartAbsDayValue()
		}
	}
	return 1<<62 - 1
}

// AbsDayOf computes the AbsDay denoted by (n, yearOfEra, month,
// dayOfMonth) and validates it lies within n's span.
func AbsDayOf(n Nengo, yearOfEra, month, dayOfMonth int) (int64, error) {
	if err := checkInit(); err != nil {
		return 0, err
	}
	gregorianYear := n.FirstRelatedGregorianYear() + yearOfEra - 1
	d := astro.AbsDayFromGregorian(gregorianYear, month, dayOfMonth)
	if d < n.StartAbsDayValue() || d >= nextStartAbsDay(n) {
		return 0, chronolib.NewError(chronolib.InvalidDate, "date falls outside the span of nengo %s", n.Kanji)
	}
	return d, nil
}
