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

// Selector is the closed set of period/lineage filters. Official,
// NorthernCourt and SouthernCourt filter on Court only (Official keeps
// every era outside the Northern Court); each other selector bounds a
// half-open [from, to) window of RelGregYear and also leaves out
// Northern Court eras.
type Selector int

const (
	Official Selector = iota
	Modern
	EdoPeriod
	AzuchiMomoyamaPeriod
	MuromachiPeriod
	NorthernCourt
	SouthernCourt
	KamakuraPeriod
	HeianPeriod
	NaraPeriod
	AsukaPeriod
)

// periodBound is a [from, to) half-open Gregorian-year window.
type periodBound struct{ from, to int }

var periodBounds = map[Selector]periodBound{
	Modern:               {1868, 1 << 30},
	EdoPeriod:            {1603, 1868},
	AzuchiMomoyamaPeriod: {1573, 1603},
	MuromachiPeriod:      {1336, 1573},
	KamakuraPeriod:       {1185, 1336},
	HeianPeriod:          {794, 1185},
	NaraPeriod:           {710, 794},
	AsukaPeriod:          {538, 710},
}

// matches reports whether rec belongs to selector, via a
// deterministic (relGregYear, court) predicate.
func matches(rec Record, selector Selector) bool {
	switch selector {
	case Official:
		return rec.Court != CourtNorthern
	case NorthernCourt:
		return rec.Court == CourtNorthern
	case SouthernCourt:
		return rec.Court == CourtSouthern
	default:
		bound, ok := periodBounds[selector]
		if !ok {
			return false
		}
		y := int(rec.RelGregYear)
		return y >= bound.from && y < bound.to && rec.Court != CourtNorthern
	}
}
