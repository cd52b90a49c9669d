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

import "github.com/chronolib/chronolib/astro"

func day(y, m, d int) int32 { return int32(astro.AbsDayFromGregorian(y, m, d)) }

// seedRecords is the chronological nengo table this build ships with,
// standing in for an embedded binary asset (see init in table.go for
// how it is round-tripped through Encode/Decode). Start dates are the
// traditional Gregorian-equivalent first day of each era;
// Northern/Southern court entries model the Nanboku-chō split
// (1336-1392).
var seedRecords = []Record{
	{RelGregYear: 645, StartAbsDay: day(645, 7, 17), Kanji: "大化", Chinese: "大化", Romaji: []string{"Taika"}},
	{RelGregYear: 650, StartAbsDay: day(650, 3, 22), Kanji: "白雉", Chinese: "白雉", Romaji: []string{"Hakuchi"}},
	{RelGregYear: 701, StartAbsDay: day(701, 5, 3), Kanji: "大宝", Chinese: "大宝", Romaji: []string{"Taihō", "Taiho"}},
	{RelGregYear: 717, StartAbsDay: day(717, 12, 24), Kanji: "養老", Chinese: "養老", Romaji: []string{"Yōrō", "Yoro"}},
	{RelGregYear: 729, StartAbsDay: day(729, 9, 2), Kanji: "天平", Chinese: "天平", Romaji: []string{"Tenpyō", "Tenpyo"}},
	{RelGregYear: 782, StartAbsDay: day(782, 9, 30), Kanji: "延暦", Chinese: "延暦", Romaji: []string{"Enryaku"}},
	{RelGregYear: 810, StartAbsDay: day(810, 11, 19), Kanji: "弘仁", Chinese: "弘仁", Romaji: []string{"Kōnin", "Konin"}},
	{RelGregYear: 834, StartAbsDay: day(834, 3, 9), Kanji: "承和", Chinese: "承和", Korean: "승화", Romaji: []string{"Jōwa", "Jowa", "Shōwa"}},
	{RelGregYear: 901, StartAbsDay: day(901, 8, 31), Kanji: "延喜", Chinese: "延喜", Romaji: []string{"Engi"}},
	{RelGregYear: 947, StartAbsDay: day(947, 5, 15), Kanji: "天暦", Chinese: "天暦", Romaji: []string{"Tenryaku"}},
	{RelGregYear: 1185, StartAbsDay: day(1185, 9, 9), Kanji: "文治", Chinese: "文治", Romaji: []string{"Bunji"}},
	{RelGregYear: 1219, StartAbsDay: day(1219, 6, 2), Kanji: "承久", Chinese: "承久", Romaji: []string{"Jōkyū", "Jokyu"}},
	{RelGregYear: 1249, StartAbsDay: day(1249, 5, 18), Kanji: "建長", Chinese: "建長", Romaji: []string{"Kenchō", "Kencho"}},
	{RelGregYear: 1278, StartAbsDay: day(1278, 3, 23), Kanji: "弘安", Chinese: "弘安", Romaji: []string{"Kōan", "Koan"}},
	{RelGregYear: 1334, StartAbsDay: day(1334, 3, 5), Kanji: "建武", Chinese: "建武", Romaji: []string{"Kenmu"}},
	{RelGregYear: 1336, StartAbsDay: day(1336, 4, 11), Kanji: "延元", Chinese: "延元", Court: CourtSouthern, Romaji: []string{"Engen"}},
	{RelGregYear: 1336, StartAbsDay: day(1336, 9, 19), Kanji: "建武", Chinese: "建武", Court: CourtNorthern, Romaji: []string{"Kenmu"}},
	{RelGregYear: 1340, StartAbsDay: day(1340, 5, 25), Kanji: "興国", Chinese: "興国", Court: CourtSouthern, Romaji: []string{"Kōkoku", "Kokoku"}},
	{RelGregYear: 1346, StartAbsDay: day(1346, 1, 20), Kanji: "正平", Chinese: "正平", Court: CourtSouthern, Romaji: []string{"Shōhei", "Shohei"}},
	{RelGregYear: 1392, StartAbsDay: day(1392, 11, 19), Kanji: "明徳", Chinese: "明徳", Romaji: []string{"Meitoku"}},
	{RelGregYear: 1429, StartAbsDay: day(1429, 10, 3), Kanji: "永享", Chinese: "永享", Romaji: []string{"Eikyō", "Eikyo"}},
	{RelGregYear: 1469, StartAbsDay: day(1469, 6, 8), Kanji: "文明", Chinese: "文明", Romaji: []string{"Bunmei"}},
	{RelGregYear: 1573, StartAbsDay: day(1573, 8, 25), Kanji: "天正", Chinese: "天正", Romaji: []string{"Tenshō", "Tensho"}},
	{RelGregYear: 1596, StartAbsDay: day(1596, 12, 16), Kanji: "慶長", Chinese: "慶長", Romaji: []string{"Keichō", "Keicho"}},
	{RelGregYear: 1615, StartAbsDay: day(1615, 9, 5), Kanji: "元和", Chinese: "元和", Romaji: []string{"Genna"}},
	{RelGregYear: 1624, StartAbsDay: day(1624, 4, 17), Kanji: "寛永", Chinese: "寛永", Romaji: []string{"Kan'ei", "Kanei"}},
	{RelGregYear: 1688, StartAbsDay: day(1688, 10, 23), Kanji: "元禄", Chinese: "元禄", Romaji: []string{"Genroku"}},
	{RelGregYear: 1716, StartAbsDay: day(1716, 8, 9), Kanji: "享保", Chinese: "享保", Romaji: []string{"Kyōhō", "Kyoho"}},
	{RelGregYear: 1751, StartAbsDay: day(1751, 12, 14), Kanji: "宝暦", Chinese: "宝暦", Romaji: []string{"Hōreki", "Horeki"}},
	{RelGregYear: 1781, StartAbsDay: day(1781, 4, 25), Kanji: "天明", Chinese: "天明", Romaji: []string{"Tenmei"}},
	{RelGregYear: 1804, StartAbsDay: day(1804, 3, 22), Kanji: "文化", Chinese: "文化", Romaji: []string{"Bunka"}},
	{RelGregYear: 1830, StartAbsDay: day(1830, 12, 10), Kanji: "天保", Chinese: "天保", Romaji: []string{"Tenpō", "Tenpo"}},
	{RelGregYear: 1854, StartAbsDay: day(1854, 12, 15), Kanji: "安政", Chinese: "安政", Romaji: []string{"Ansei"}},
	{RelGregYear: 1865, StartAbsDay: day(1865, 5, 1), Kanji: "慶応", Chinese: "慶応", Romaji: []string{"Keiō", "Keio"}},
	{RelGregYear: 1868, StartAbsDay: day(1868, 10, 23), Kanji: "明治", Chinese: "明治", Korean: "메이지", Russian: "Мэйдзи", Romaji: []string{"Meiji"}},
	{RelGregYear: 1912, StartAbsDay: day(1912, 7, 30), Kanji: "大正", Chinese: "大正", Korean: "다이쇼", Russian: "Тайсё", Romaji: []string{"Taishō", "Taisho"}},
	{RelGregYear: 1926, StartAbsDay: day(1926, 12, 25), Kanji: "昭和", Chinese: "昭和", Korean: "쇼와", Russian: "Сёва", Romaji: []string{"Shōwa", "Showa"}},
	{RelGregYear: 1989, StartAbsDay: day(1989, 1, 8), Kanji: "平成", Chinese: "平成", Korean: "헤이세이", Russian: "Хэйсэй", Romaji: []string{"Heisei"}},
	{RelGregYear: 2019, StartAbsDay: day(2019, 5, 1), Kanji: "令和", Chinese: "令和", Korean: "레이와", Russian: "Рэйва", Romaji: []string{"Reiwa"}},
}
