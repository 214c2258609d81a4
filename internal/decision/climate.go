// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package decision

import (
	"strings"
	"unicode"
)

// Climate zone biases in °F. A positive bias shifts the jacket thresholds up:
// people in cold zones are acclimated, so only genuinely cold weather counts,
// while people in warm zones bundle up earlier.
const (
	BiasWarmZone     = -12
	BiasModerateZone = 0
	BiasColdZone     = 8
)

// Latitude fallback boundaries for locations not on either city list.
const (
	warmZoneLatitude = 30
	coldZoneLatitude = 45
)

// warmCities are cities whose residents are acclimated to warm weather.
var warmCities = []string{
	"miami",
	"phoenix",
	"houston",
	"los angeles",
	"san diego",
	"orlando",
	"tampa",
	"new orleans",
	"honolulu",
	"san antonio",
	"dallas",
	"austin",
}

// coldCities are cities whose residents are acclimated to cold weather.
var coldCities = []string{
	"chicago",
	"minneapolis",
	"boston",
	"detroit",
	"buffalo",
	"denver",
	"milwaukee",
	"cleveland",
	"anchorage",
	"salt lake city",
	"pittsburgh",
}

// ClimateBias maps a location to its static regional temperature bias. Known
// warm and cold cities are matched by name first; everything else falls back
// to latitude magnitude. The function is pure and total, it never fails.
func ClimateBias(lat, _ float64, cityName string) int {
	if matchesCity(cityName, warmCities) {
		return BiasWarmZone
	}
	if matchesCity(cityName, coldCities) {
		return BiasColdZone
	}

	absLat := lat
	if absLat < 0 {
		absLat = -absLat
	}
	switch {
	case absLat < warmZoneLatitude:
		return BiasWarmZone
	case absLat > coldZoneLatitude:
		return BiasColdZone
	default:
		return BiasModerateZone
	}
}

// matchesCity reports whether the location name names one of the given cities.
// A city matches on exact first-token equality or when the city name is
// immediately followed by a comma inside the full string. Bare substring
// matches are deliberately not enough: "Bostonia" must not match "boston".
func matchesCity(name string, cities []string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return false
	}

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	first := ""
	if len(tokens) > 0 {
		first = tokens[0]
	}

	for _, city := range cities {
		if first == city || strings.Contains(lower, city+",") {
			return true
		}
	}
	return false
}
