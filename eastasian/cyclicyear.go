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

package eastasian

import (
	"github.com/chronolib/chronolib"
)

// stemNames and branchNames are the celestial stems and terrestrial
// branches. Display names such as "jia-zi" are assembled from these
// two fixed 10- and 12-element tables rather than held as a 60-entry
// literal string table.
var stemNames = [10]string{"jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui"}
var branchNames = [12]string{"zi", "chou", "yin", "mao", "chen", "si", "wu", "wei", "shen", "you", "xu", "hai"}

// CyclicYear is a sexagesimal year index in [1,60].
type CyclicYear int

// CyclicYearOf constructs a CyclicYear from a 1-based index, rejecting
// values outside [1,60].
func CyclicYearOf(yearOfCycle int) (CyclicYear, error) {
	if yearOfCycle < 1 || yearOfCycle > 60 {
		return 0, chronolib.NewError(chronolib.OutOfRange, "cyclic year %d out of range [1,60]", yearOfCycle)
	}
	return CyclicYear(yearOfCycle), nil
}

// Stem returns the 0-based celestial stem, (y-1) mod 10.
func (y CyclicYear) Stem() int { return int(chronolib.FloorMod(int64(y)-1, 10)) }

// Branch returns the 0-based terrestrial branch, (y-1) mod 12.
func (y CyclicYear) Branch() int { return int(chronolib.FloorMod(int64(y)-1, 12)) }

// OfStemBranch reconstructs a CyclicYear from a (stem, branch) pair.
// The pair is well-defined only when (branch-stem) is even; an
// invalid combination is rejected as InvalidDate.
func OfStemBranch(stem, branch int) (CyclicYear, error) {
	if chronolib.FloorMod(int64(branch-stem), 2) != 0 {
		return 0, chronolib.NewError(chronolib.InvalidDate, "stem %d and branch %d have incompatible parity", stem, branch)
	}
	y := chronolib.FloorMod(int64(stem)+chronolib.FloorMod(25*int64(branch-stem), 60), 60) + 1
	return CyclicYear(y), nil
}

// DisplayName returns the "stem-branch" romanized name for the year,
// e.g. CyclicYear(1).DisplayName() == "jia-zi".
func (y CyclicYear) DisplayName() string {
	return stemNames[y.Stem()] + "-" + branchNames[y.Branch()]
}

// QingEmperor identifies a Qing dynasty reign era for
// CyclicYear.InQingDynasty.
type QingEmperor int

const (
	Kangxi QingEmperor = iota
	Yongzheng
	Qianlong
)

// qingReignStart and qingReignLength give the first Gregorian year
// and reign length of each emperor covered here. Kangxi reigned 61
// years (1662-1722), so the cyclic year of his first year (39) recurs
// in his last, producing an Ambivalent result.
var qingReignStart = map[QingEmperor]int{Kangxi: 1662, Yongzheng: 1723, Qianlong: 1736}
var qingReignLength = map[QingEmperor]int{Kangxi: 61, Yongzheng: 13, Qianlong: 60}

// InQingDynasty returns the single Gregorian year within the given
// emperor's reign whose cyclic year matches y, or an Ambivalent error
// if the reign is long enough (more than 60 years) that y recurs within it —
// e.g. the Kangxi reign, where cyclic year 39 names two candidate
// Gregorian years.
func (y CyclicYear) InQingDynasty(emperor QingEmperor) (int, error) {
	start, ok := qingReignStart[emperor]
	if !ok {
		return 0, chronolib.NewError(chronolib.InvalidEra, "unknown Qing emperor %d", emperor)
	}
	length := qingReignLength[emperor]
	startCyclicYear := gregorianYearCyclicYear(start)
	matches := make([]int, 0, 2)
	for i := 0; i < length; i++ {
		cy := chronolib.FloorMod(int64(startCyclicYear)-1+int64(i), 60) + 1
		if CyclicYear(cy) == y {
			matches = append(matches, start+i)
		}
	}
	if len(matches) == 0 {
		return 0, chronolib.NewError(chronolib.OutOfRange, "cyclic year %d does not occur in %v's reign", y, emperor)
	}
	if len(matches) > 1 {
		return 0, chronolib.NewError(chronolib.Ambivalent, "cyclic year %d maps to both %d and %d within %v's reign", y, matches[0], matches[1], emperor)
	}
	return matches[0], nil
}

// gregorianYearCyclicYear gives the cyclic year of the lunisolar year
// beginning nearest a given Gregorian year, anchored on 1984 (a known
// jia-zi / cycle-78 year-1).
func gregorianYearCyclicYear(gregorianYear int) int {
	return int(chronolib.FloorMod(int64(gregorianYear-1984), 60) + 1)
}
