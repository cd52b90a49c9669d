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

import "github.com/pkg/errors"

// SupportedWindowMinAbsDay and SupportedWindowMaxAbsDay bound the
// range over which the astronomical primitives are guaranteed
// accurate for the East Asian engine: Gregorian 1645-01-28 to
// 3000-01-27.
var (
	SupportedWindowMinAbsDay = AbsDayFromGregorian(1645, 1, 28)
	SupportedWindowMaxAbsDay = AbsDayFromGregorian(3000, 1, 27)
)

// ErrOutOfRange is returned by CheckWindow when d falls outside the
// astronomical primitives' supported window.
var ErrOutOfRange = errors.New("astro: date outside supported astronomical window")

// CheckWindow reports an error if d lies outside the supported
// astronomical window; calendar packages wrap this into their own
// OutOfRange error kind rather than exposing the astro package's
// sentinel directly.
func CheckWindow(d int64) error {
	if d < int64(SupportedWindowMinAbsDay) || d > int64(SupportedWindowMaxAbsDay) {
		return errors.Wrapf(ErrOutOfRange, "absday %d", d)
	}
	return nil
}
