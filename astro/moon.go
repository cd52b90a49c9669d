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

import "math"

// SynodicMonth is the mean length, in days, of a lunation: the
// interval between successive new moons.
const SynodicMonth = 29.530588861

// meanNewMoonJDE returns the JDE of the k-th new moon counted from the
// epoch new moon near 2000-01-06 (k=0), using Meeus ch. 49's
// low-precision mean-conjunction formula plus its largest periodic
// correction terms. This is the lunar analogue of the solstice
// package's Horner-polynomial-plus-periodic-term construction; k need
// not be an integer during search, only at the accepted result.
func meanNewMoonJDE(k float64) float64 {
	t := k / 1236.85
	jde := 2451550.09766 + 29.530588861*k +
		0.00015437*t*t - 0.000000150*t*t*t + 0.00000000073*t*t*t*t
	e := 1 - 0.002516*t - 0.0000074*t*t
	m := (2.5534 + 29.10535669*k - 0.0000014*t*t - 0.00000011*t*t*t) * deg2rad
	mp := (201.5643 + 385.81693528*k + 0.0107582*t*t + 0.00001238*t*t*t - 0.000000058*t*t*t*t) * deg2rad
	f := (160.7108 + 390.67050284*k - 0.0016118*t*t - 0.00000227*t*t*t + 0.000000011*t*t*t*t) * deg2rad
	corr := -0.40720*math.Sin(mp) +
		0.17241*e*math.Sin(m) +
		0.01608*math.Sin(2*mp) +
		0.01039*math.Sin(2*f) +
		0.00739*e*math.Sin(mp-m) -
		0.00514*e*math.Sin(mp+m) +
		0.00208*e*e*math.Sin(2*m)
	return jde + corr
}

func estimateLunation(d int64) float64 {
	jde := JDEFromAbsDay(d)
	return math.Round((jde - 2451550.09766) / SynodicMonth)
}

// maxMoonSearchSteps bounds the linear descent/ascent used to locate
// the requested new moon from the mean-formula estimate; the estimate
// is accurate to well under one synodic month, so two or three steps
// suffice in practice.
const maxMoonSearchSteps = 4

// NewMoonOnOrAfter returns the AbsDay (localized to zoneOffsetMinutes)
// of the day containing the smallest new moon at or after d.
func NewMoonOnOrAfter(d int64, zoneOffsetMinutes int) int64 {
	k := estimateLunation(d) - 2
	var day int64
	for i := 0; i < maxMoonSearchSteps+4; i++ {
		day = LocalAbsDay(meanNewMoonJDE(k), zoneOffsetMinutes)
		if day >= d {
			return day
		}
		k++
	}
	return day
}

// NewMoonBefore returns the AbsDay (localized to zoneOffsetMinutes) of
// the day containing the largest new moon strictly before d.
func NewMoonBefore(d int64, zoneOffsetMinutes int) int64 {
	k := estimateLunation(d) + 2
	var day int64
	for i := 0; i < maxMoonSearchSteps+4; i++ {
		day = LocalAbsDay(meanNewMoonJDE(k), zoneOffsetMinutes)
		if day < d {
			return day
		}
		k--
	}
	return day
}

// Lunations computes round((m2-m1)/SynodicMonth), the count of
// synodic months between two new-moon-aligned AbsDays.
func Lunations(m1, m2 int64) int64 {
	return int64(math.Round(float64(m2-m1) / SynodicMonth))
}
