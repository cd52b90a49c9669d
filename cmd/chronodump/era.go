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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronolib/chronolib/astro"
	"github.com/chronolib/chronolib/nengo"
)

var eraCmd = &cobra.Command{
	Use:   "era <kanji-or-romaji> <yearOfEra> <month> <day>",
	Short: "Resolve a Japanese nengo date to its Gregorian equivalent",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		yearOfEra, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid yearOfEra %q: %w", args[1], err)
		}
		month, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", args[2], err)
		}
		day, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", args[3], err)
		}
		n, err := resolveNengo(args[0])
		if err != nil {
			return err
		}
		absDay, err := nengo.AbsDayOf(n, yearOfEra, month, day)
		if err != nil {
			return err
		}
		y, m, d := astro.GregorianFromAbsDay(absDay)
		cmd.Printf("%s %d-%02d-%02d => Gregorian %04d-%02d-%02d\n", n.Kanji, yearOfEra, month, day, y, m, d)
		return nil
	},
}

// resolveNengo looks up s first by exact kanji, then by longest
// romaji prefix match, erroring if the latter is ambivalent.
func resolveNengo(s string) (nengo.Nengo, error) {
	if n, err := nengo.ByKanji(s); err == nil {
		return n, nil
	}
	matches, err := nengo.ByRomajiPrefix(s)
	if err != nil {
		return nengo.Nengo{}, err
	}
	switch len(matches) {
	case 0:
		return nengo.Nengo{}, fmt.Errorf("no nengo matches %q", s)
	case 1:
		return matches[0], nil
	default:
		return nengo.Nengo{}, fmt.Errorf("%q is ambivalent among %d nengo candidates", s, len(matches))
	}
}
