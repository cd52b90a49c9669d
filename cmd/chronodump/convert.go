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
	"github.com/chronolib/chronolib/eastasian"
	"github.com/chronolib/chronolib/ethiopian"
	"github.com/chronolib/chronolib/julian"
	"github.com/chronolib/chronolib/persian"
)

var convertCmd = &cobra.Command{
	Use:   "convert <calendar> <absday>",
	Short: "Render the AbsDay under a given calendar system",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		absDay, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid absday %q: %w", args[1], err)
		}
		line, err := renderCalendar(args[0], absDay)
		if err != nil {
			return err
		}
		cmd.Println(line)
		return nil
	},
}

func renderCalendar(calendar string, absDay int64) (string, error) {
	switch calendar {
	case "gregorian":
		y, m, d := astro.GregorianFromAbsDay(absDay)
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d), nil
	case "julian":
		d := julian.FromAbsDay(absDay)
		return fmt.Sprintf("%04d-%02d-%02d (Julian)", d.ProlepticYear, d.Month, d.DayOfMonth), nil
	case "persian":
		d := persian.FromAbsDay(absDay)
		return fmt.Sprintf("%04d-%02d-%02d (Persian, Borkowski)", d.ProlepticYear, d.Month, d.DayOfMonth), nil
	case "ethiopian":
		d := ethiopian.FromAbsDay(absDay)
		return fmt.Sprintf("%s %04d-%02d-%02d (Ethiopian)", d.Era, d.YearOfEra, d.Month, d.DayOfMonth), nil
	case "china", "korea", "vietnam", "japan":
		sys := eastasianSystem(calendar)
		d, err := eastasian.ToDate(sys, absDay)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("cycle %d, year %d, month %s, day %d", d.Cycle, d.YearOfCycle, d.Month, d.DayOfMonth), nil
	default:
		return "", fmt.Errorf("unknown calendar %q", calendar)
	}
}

func eastasianSystem(name string) *eastasian.System {
	switch name {
	case "korea":
		return eastasian.Korea
	case "vietnam":
		return eastasian.Vietnam
	case "japan":
		return eastasian.Japan
	default:
		return eastasian.China
	}
}
