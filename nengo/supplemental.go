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
	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/astro"
)

// ISODate is a plain Gregorian (year, month, day) triple, used to
// avoid a dependency from SupplementalEra's wire-ish shape on any
// particular calendar value type.
type ISODate struct {
	Year, Month, Day int
}

// SupplementalEra is a runtime-configured nengo entry, parsed from the
// `japanese.supplemental.era` environment value by
// github.com/chronolib/chronolib/config.
type SupplementalEra struct {
	Name    string
	Kanji   string
	Since   ISODate
	Chinese string
	Korean  string
	Russian string
}

// RegisterSupplementalEra appends e to the live table, normalizing its
// name and rejecting anything predating Heisei.
func RegisterSupplementalEra(e SupplementalEra) error {
	if err := checkInit(); err != nil {
		return err
	}
	if len(e.Kanji) == 0 {
		return chronolib.NewError(chronolib.InvalidEra, "supplemental era requires a kanji label")
	}
	startAbsDay := astro.AbsDayFromGregorian(e.Since.Year, e.Since.Month, e.Since.Day)

	if startAbsDay < heiseiStartAbsDay {
		return chronolib.NewError(chronolib.InvalidEra, "supplemental era %q may not predate Heisei's start (1989-01-08)", e.Name)
	}
	rec := Record{
		RelGregYear: int16(e.Since.Year),
		StartAbsDay: int32(startAbsDay),
		Kanji:       e.Kanji,
		Chinese:     e.Chinese,
		Korean:      e.Korean,
		Russian:     e.Russian,
		Romaji:      []string{normalizeName(e.Name)},
	}
	n := Nengo{Record: rec, index: len(table.all)}
	table.all = append(table.all, n)
	table.main = append(table.main, n)
	table.byKanji[rec.Kanji] = n
	if rec.Chinese != "" {
		table.byChinese[rec.Chinese] = n
	}
	if rec.Korean != "" {
		table.koreanIndex = append(table.koreanIndex, alternateEntry{rec.Korean, n})
		sortAlternates(table.koreanIndex)
	}
	if rec.Russian != "" {
		table.russianIndex = append(table.russianIndex, alternateEntry{rec.Russian, n})
		sortAlternates(table.russianIndex)
	}
	table.romajiIndex = append(table.romajiIndex, alternateEntry{rec.Romaji[0], n})
	sortAlternates(table.romajiIndex)
	return nil
}
