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

import (
	"math"

	"github.com/soniakeys/unit"
)

const deg2rad = math.Pi / 180

// MeanTropicalYear is the mean tropical year length in days, used for
// year estimation.
const MeanTropicalYear = 365.242189

// SolarLongitude returns the apparent geocentric ecliptic longitude of
// the sun at the given JDE, using the low-precision series of Meeus
// ch. 25 — the same order of approximation as the
// github.com/soniakeys/meeus solstice package's Horner-plus-periodic-
// term construction, adapted here to longitude rather than solstice
// timing. Accuracy (a few arcseconds) is well within the tolerance a
// documented delta-T approximation needs to provide.
func SolarLongitude(jde float64) unit.Angle {
	t := (jde - 2451545.0) / 36525.0
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	mRad := m * deg2rad
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)
	trueLongitude := l0 + c
	omega := 125.04 - 1934.136*t
	apparent := trueLongitude - 0.00569 - 0.00478*math.Sin(omega*deg2rad)
	return unit.AngleFromDeg(floorModFloat(apparent, 360))
}

func floorModFloat(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}

// SolarLongitudeIndexMajor returns the index (1..12) of the 30-degree
// ecliptic sector containing the sun's apparent longitude at local
// midnight of the given AbsDay. Two days share an index iff no major
// solar term (zhongqi) falls within the half-open interval between
// them — the property the East Asian leap-month test relies on. The
// absolute numbering origin (which sector is "1") is
// not externally meaningful; only equality between two calls matters.
func SolarLongitudeIndexMajor(d int64, zoneOffsetMinutes int) int {
	jde := JDEFromAbsDay(d) - float64(zoneOffsetMinutes)/1440.0
	lon := SolarLongitude(jde).Deg()
	idx := int(math.Floor(lon/30.0)) + 1
	if idx > 12 {
		idx -= 12
	}
	if idx < 1 {
		idx += 12
	}
	return idx
}

// MarchEquinoxJDE exposes marchEquinoxJDE for the Persian calendar's
// astronomical new-year rule.
func MarchEquinoxJDE(year int) float64 { return marchEquinoxJDE(year) }

// decemberSolsticeJDE returns the JDE of the December solstice for the
// given Gregorian year, using the same term table and Horner
// polynomial construction as soniakeys/meeus's solstice.December.
func decemberSolsticeJDE(year int) float64 {
	return equinoxSolstice(year, dc0, dc2)
}

var (
	dc0 = []float64{1721414.39987, 365242.88257, -.00769, -.00933, -.00006}
	dc2 = []float64{2451900.05952, 365242.74049, -.06223, -.00823, .00032}
)

type solsticeTerm struct{ a, b, c float64 }

var solsticeTerms = []solsticeTerm{
	{485, 324.96, 1934.136},
	{203, 337.23, 32964.467},
	{199, 342.08, 20.186},
	{182, 27.85, 445267.112},
	{156, 73.14, 45036.886},
	{136, 171.52, 22518.443},
	{77, 222.54, 65928.934},
	{74, 296.72, 3034.906},
	{70, 243.58, 9037.513},
	{58, 119.81, 33718.147},
	{52, 297.17, 150.678},
	{50, 21.02, 2281.226},
	{45, 247.54, 29929.562},
	{44, 325.15, 31555.956},
	{29, 60.93, 4443.417},
	{18, 155.12, 67555.328},
	{17, 288.79, 4562.452},
	{16, 198.04, 62894.029},
	{14, 199.76, 31436.921},
	{12, 95.39, 14577.848},
	{12, 287.11, 31931.756},
	{12, 320.81, 34777.259},
	{9, 227.73, 1222.114},
	{8, 15.45, 16859.074},
}

func horner(x float64, c ...float64) float64 {
	i := len(c) - 1
	y := c[i]
	for i > 0 {
		i--
		y = y*x + c[i]
	}
	return y
}

func equinoxSolstice(year int, c0, c2 []float64) float64 {
	var j0 float64
	var y int
	if year < 1000 {
		y = year
		j0 = horner(float64(y)*.001, c0...)
	} else {
		y = year - 2000
		j0 = horner(float64(y)*.001, c2...)
	}
	t := (j0 - 2451545.0) / 36525.0
	w := 35999.373*deg2rad*t - 2.47*deg2rad
	deltaLambda := 1 + .0334*math.Cos(w) + .0007*math.Cos(2*w)
	s := 0.0
	for i := len(solsticeTerms) - 1; i >= 0; i-- {
		term := solsticeTerms[i]
		s += term.a * math.Cos((term.b+term.c*t)*deg2rad)
	}
	return j0 + .00001*s/deltaLambda
}

// WinterSolsticeOnOrBefore returns the AbsDay (localized to
// zoneOffsetMinutes) of the midnight containing the most recent
// December solstice at or before d.
func WinterSolsticeOnOrBefore(d int64, zoneOffsetMinutes int) int64 {
	year := GregorianYearFromAbsDay(d) + 1
	for {
		day := LocalAbsDay(decemberSolsticeJDE(year), zoneOffsetMinutes)
		if day <= d {
			return day
		}
		year--
	}
}

// marchEquinoxJDE returns the JDE of the March (vernal) equinox for
// the given Gregorian year, using the same term table and Horner
// polynomial construction as soniakeys/meeus's solstice.March — the
// basis of the Persian calendar's astronomical new-year rule.
func marchEquinoxJDE(year int) float64 {
	return equinoxSolstice(year, mc0, mc2)
}

var (
	mc0 = []float64{1721139.29189, 365242.13740, .06134, .00111, -.00071}
	mc2 = []float64{2451623.80984, 365242.37404, .05169, -.00411, -.00057}
)

// LocalAbsDay converts a JDE (in Universal Time) to the AbsDay of the
// calendar day containing it, localized to the given UTC offset in
// minutes. This is the single localization point every East Asian and
// Persian-astronomical computation in this module funnels through.
func LocalAbsDay(jde float64, zoneOffsetMinutes int) int64 {
	return AbsDayFromJDE(jde + float64(zoneOffsetMinutes)/1440.0)
}
