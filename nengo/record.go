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

// Package nengo resolves Japanese era (nengo) names and their
// associated date ranges.
package nengo

// Court distinguishes the Northern and Southern imperial lines during
// the Nanboku-chō period (1336-1392); Unified applies to every other
// era.
type Court uint8

const (
	CourtUnified Court = iota
	CourtSouthern
	CourtNorthern
)

// Record is one nengo table entry: the packed fields of the binary
// asset format, decoded into memory.
type Record struct {
	RelGregYear int16
	StartAbsDay int32
	Kanji       string
	Chinese     string
	Korean      string
	Russian     string
	Court       Court
	Romaji      []string
}

// Nengo is the resolved, queryable view of a Record, carrying its
// position in the table; AbsDayOf's validation derives the era's end
// boundary (the next era's start, or open for the current era) from
// that position.
type Nengo struct {
	Record
	index int
}

// FirstRelatedGregorianYear is the Gregorian year in which this era's
// first day falls; year-of-era 1 is measured from this year.
func (n Nengo) FirstRelatedGregorianYear() int { return int(n.RelGregYear) }

// StartAbsDayValue is the AbsDay on which this era begins.
func (n Nengo) StartAbsDayValue() int64 { return int64(n.StartAbsDay) }
