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

package config

import (
	"strings"
	"time"

	"github.com/chronolib/chronolib"
	"github.com/chronolib/chronolib/nengo"
)

// heiseiStart is the earliest date a supplemental era's `since` may
// name: Heisei's accession, the start of the modern era table.
var heiseiStart = time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC)

var recognizedKeys = map[string]bool{
	"name": true, "kanji": true, "since": true,
	"chinese": true, "korean": true, "russian": true,
}

// ParseSupplementalEra parses the `japanese.supplemental.era`
// environment value, a comma-separated list of `key=value` pairs
// (keys: name, kanji, since, and the optional chinese, korean,
// russian), into a nengo.SupplementalEra.
func ParseSupplementalEra(raw string) (nengo.SupplementalEra, error) {
	fields, err := tokenize(raw)
	if err != nil {
		return nengo.SupplementalEra{}, err
	}
	name, ok := fields["name"]
	if !ok || name == "" {
		return nengo.SupplementalEra{}, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: missing required field \"name\"")
	}
	kanji, ok := fields["kanji"]
	if !ok {
		return nengo.SupplementalEra{}, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: missing required field \"kanji\"")
	}
	if n := len([]rune(kanji)); n != 2 {
		return nengo.SupplementalEra{}, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: kanji must be 2 characters, got %d", n)
	}
	since, ok := fields["since"]
	if !ok {
		return nengo.SupplementalEra{}, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: missing required field \"since\"")
	}
	sinceDate, err := time.Parse("2006-01-02", since)
	if err != nil {
		return nengo.SupplementalEra{}, chronolib.WrapError(chronolib.InvalidEra, err, "japanese.supplemental.era: since %q is not ISO-8601", since)
	}
	if sinceDate.Before(heiseiStart) {
		return nengo.SupplementalEra{}, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: since %q predates Heisei's start (1989-01-08)", since)
	}
	return nengo.SupplementalEra{
		Name:    name,
		Kanji:   kanji,
		Since:   nengo.ISODate{Year: sinceDate.Year(), Month: int(sinceDate.Month()), Day: sinceDate.Day()},
		Chinese: fields["chinese"],
		Korean:  fields["korean"],
		Russian: fields["russian"],
	}, nil
}

// tokenize scans raw into a map of recognized key=value fields,
// rejecting unrecognized keys and malformed pair structure.
func tokenize(raw string) (map[string]string, error) {
	scan := NewScanner(strings.NewReader(raw))
	fields := make(map[string]string)
	var key, pendingWS string
	expectKey, haveValue := true, false
	for {
		tok, str := scan.Scan()
		switch tok {
		case WS:
			if haveValue {
				pendingWS += str
			}
			continue
		case EOF:
			if !expectKey && !haveValue {
				return nil, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: unexpected end of input after key %q", key)
			}
			return fields, nil
		case FIELD:
			if expectKey {
				key = str
				if !recognizedKeys[key] {
					return nil, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: unrecognized key %q", key)
				}
			} else if haveValue {
				fields[key] += pendingWS + str
				pendingWS = ""
			} else {
				fields[key] = str
				haveValue = true
			}
		case EQUALS:
			if !expectKey {
				return nil, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: unexpected '=' near %q", key)
			}
			expectKey = false
		case COMMA:
			if expectKey {
				return nil, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: unexpected ',' before key=value pair")
			}
			expectKey, haveValue, pendingWS = true, false, ""
		default:
			return nil, chronolib.NewError(chronolib.InvalidEra, "japanese.supplemental.era: illegal character %q", str)
		}
	}
}
