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

// Package config parses the core's one recognized environment entry,
// `japanese.supplemental.era`. The scanner below is a hand-rolled
// lexer (tokens, read/unread over a bufio.Reader) for comma-separated
// key=value scanning instead of JSON's braces and colons.
package config

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

type token int

const (
	ILLEGAL token = iota
	EOF
	WS
	FIELD
	EQUALS
	COMMA
)

const eof = rune(0)

// isWhitespace reports whether ch is a blank, tab, or newline.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

// Scanner is a lexical scanner over comma-separated key=value pairs.
type Scanner struct {
	reader *bufio.Reader
}

// NewScanner returns a new Scanner reading from reader.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(reader)}
}

// read reads the next rune, returning eof on any error.
func (s *Scanner) read() rune {
	ch, _, err := s.reader.ReadRune()
	if err != nil {
		return eof
	}
	return ch
}

// unread places the previously read rune back on the reader.
func (s *Scanner) unread() { _ = s.reader.UnreadRune() }

// scanWhitespace consumes the current rune and all contiguous
// whitespace that follows it.
func (s *Scanner) scanWhitespace() (tok token, str string) {
	var buf strings.Builder
	buf.WriteRune(s.read())
	for {
		ch := s.read()
		if ch == eof {
			break
		}
		if !isWhitespace(ch) {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}
	return WS, buf.String()
}

// scanField consumes a run of runes that is neither '=', ',', nor
// whitespace — a field name or a field value, undifferentiated here
// since both share the same character class (ASCII names, kanji,
// hangul, cyrillic, and ISO-8601 digits all qualify).
func (s *Scanner) scanField() (tok token, str string) {
	var buf strings.Builder
	for {
		ch := s.read()
		if ch == eof {
			break
		}
		if ch == '=' || ch == ',' || isWhitespace(ch) {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}
	return FIELD, buf.String()
}

// Scan returns the next token and its literal value.
func (s *Scanner) Scan() (tok token, str string) {
	ch := s.read()
	switch {
	case ch == eof:
		return EOF, ""
	case isWhitespace(ch):
		s.unread()
		return s.scanWhitespace()
	case ch == '=':
		return EQUALS, string(ch)
	case ch == ',':
		return COMMA, string(ch)
	case unicode.IsLetter(ch) || unicode.IsDigit(ch):
		s.unread()
		return s.scanField()
	}
	return ILLEGAL, string(ch)
}
