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
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chronodump",
	Short: "Inspect and convert dates across chronolib's calendar systems",
	Long: `chronodump is a command-line exerciser over the chronolib library's
East Asian, Persian, Ethiopian, and Julian calendar engines, plus the
Japanese nengo resolver. It is not part of chronolib's tested core
surface; it exists to give the programmatic API a runnable entry point.`,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(eraCmd)
}
