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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var circumflexToMacron = map[rune]rune{
	'â': 'ā', 'Â': 'Ā',
	'ê': 'ē', 'Ê': 'Ē',
	'î': 'ī', 'Î': 'Ī',
	'ô': 'ō', 'Ô': 'Ō',
	'û': 'ū', 'Û': 'Ū',
}

var upperCaser = cases.Upper(language.Und)

// normalizeName applies the supplemental-era name normalization:
// uppercase the first letter, expand circumflexed macron vowels, map
// spaces to hyphens, and ASCII apostrophes to the typographic U+2019.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if m, ok := circumflexToMacron[r]; ok {
			r = m
		}
		switch r {
		case ' ':
			r = '-'
		case '\'':
			r = '’'
		}
		b.WriteRune(r)
	}
	normalized := b.String()
	if normalized == "" {
		return normalized
	}
	first, size := utf8.DecodeRuneInString(normalized)
	return upperCaser.String(string(first)) + normalized[size:]
}
