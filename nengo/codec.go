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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Encode packs records into a compact wire format: a sequence of
// (relGregYear i16, startAbsDay i32, kanji, chinese, korean, russian,
// court u8, romajiCount u8, romaji*) records, each string
// length-prefixed by a single byte. There is no explicit terminator;
// the stream simply ends.
func Encode(records []Record) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		_ = binary.Write(&buf, binary.BigEndian, r.RelGregYear)
		_ = binary.Write(&buf, binary.BigEndian, r.StartAbsDay)
		writeString(&buf, r.Kanji)
		writeString(&buf, r.Chinese)
		writeString(&buf, r.Korean)
		writeString(&buf, r.Russian)
		buf.WriteByte(byte(r.Court))
		buf.WriteByte(byte(len(r.Romaji)))
		for _, alt := range r.Romaji {
			writeString(&buf, alt)
		}
	}
	return buf.Bytes()
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte(byte(len(s)))
	buf.WriteString(s)
}

// Decode unpacks the byte-exact inverse of Encode, returning every
// record in file order. A truncated or malformed stream yields an
// error rather than a partial table, per §5's "no partial
// initialization" rule.
func Decode(data []byte) ([]Record, error) {
	r := bytes.NewReader(data)
	var records []Record
	for {
		var relGregYear int16
		err := binary.Read(r, binary.BigEndian, &relGregYear)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: relGregYear", len(records))
		}
		var startAbsDay int32
		if err := binary.Read(r, binary.BigEndian, &startAbsDay); err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: startAbsDay", len(records))
		}
		kanji, err := readString(r)
		if err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: kanji", len(records))
		}
		chinese, err := readString(r)
		if err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: chinese", len(records))
		}
		korean, err := readString(r)
		if err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: korean", len(records))
		}
		russian, err := readString(r)
		if err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: russian", len(records))
		}
		var court, romajiCount byte
		if court, err = r.ReadByte(); err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: court", len(records))
		}
		if romajiCount, err = r.ReadByte(); err != nil {
			return nil, errors.Wrapf(err, "nengo: decode record %d: romajiCount", len(records))
		}
		romaji := make([]string, 0, romajiCount)
		for i := byte(0); i < romajiCount; i++ {
			alt, err := readString(r)
			if err != nil {
				return nil, errors.Wrapf(err, "nengo: decode record %d: romaji[%d]", len(records), i)
			}
			romaji = append(romaji, alt)
		}
		records = append(records, Record{
			RelGregYear: relGregYear,
			StartAbsDay: startAbsDay,
			Kanji:       kanji,
			Chinese:     chinese,
			Korean:      korean,
			Russian:     russian,
			Court:       Court(court),
			Romaji:      romaji,
		})
	}
}

func readString(r *bytes.Reader) (string, error) {
	n, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
