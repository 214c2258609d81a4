// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package openmeteo

import "jacketcheck/internal/weather"

// wmoDescriptions maps WMO weather code integers to their descriptions
var wmoDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// conditionFromWMO maps a WMO weather code to the coarse condition label the
// decision core and presenter work with.
func conditionFromWMO(code int) weather.Condition {
	switch {
	case code == 0 || code == 1:
		return weather.ConditionClear
	case code == 2 || code == 3:
		return weather.ConditionClouds
	case code == 45 || code == 48:
		return weather.ConditionFog
	case code >= 51 && code <= 57:
		return weather.ConditionDrizzle
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return weather.ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return weather.ConditionSnow
	case code >= 95 && code <= 99:
		return weather.ConditionThunderstorm
	default:
		return weather.ConditionUnknown
	}
}

// describeWMO returns the human-readable description for a WMO weather code.
func describeWMO(code int) string {
	if description, ok := wmoDescriptions[code]; ok {
		return description
	}
	return "Unknown conditions"
}

// isRainCode reports whether the WMO code means liquid precipitation is
// actively falling.
func isRainCode(code int) bool {
	condition := conditionFromWMO(code)
	return condition == weather.ConditionDrizzle || condition == weather.ConditionRain ||
		condition == weather.ConditionThunderstorm
}

// isSnowCode reports whether the WMO code means snow is actively falling.
func isSnowCode(code int) bool {
	return conditionFromWMO(code) == weather.ConditionSnow
}

// iconID returns a stable icon identifier for a condition label.
func iconID(condition weather.Condition) string {
	switch condition {
	case weather.ConditionClear:
		return "clear"
	case weather.ConditionClouds:
		return "clouds"
	case weather.ConditionFog:
		return "fog"
	case weather.ConditionDrizzle:
		return "drizzle"
	case weather.ConditionRain:
		return "rain"
	case weather.ConditionSnow:
		return "snow"
	case weather.ConditionThunderstorm:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
