// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"github.com/vorlif/spreak/localize"

	"jacketcheck/internal/decision"
	"jacketcheck/internal/weather"
)

// answerIcons maps the decision answer to the waybar bar icon.
var answerIcons = map[decision.Answer]string{
	decision.AnswerYes: "🧥",
	decision.AnswerNo:  "👕",
}

// conditionLabels maps the coarse weather conditions to their localizable
// display labels.
var conditionLabels = map[weather.Condition]localize.MsgID{
	weather.ConditionClear:        "Clear",
	weather.ConditionClouds:       "Cloudy",
	weather.ConditionFog:          "Fog",
	weather.ConditionDrizzle:      "Drizzle",
	weather.ConditionRain:         "Rain",
	weather.ConditionSnow:         "Snow",
	weather.ConditionThunderstorm: "Thunderstorm",
	weather.ConditionUnknown:      "Unknown",
}

var i18nVars = map[string]localize.MsgID{
	"temp":        "Temperature",
	"temperature": "Temperature",
	"apparent":    "Feels like",
	"feels like":  "Feels like",
	"humidity":    "Humidity",
	"windspeed":   "Wind speed",
	"wind speed":  "Wind speed",
	"location":    "Location",
	"sunrise":     "Sunrise",
	"sunset":      "Sunset",
	"updated":     "Updated",
	"condition":   "Condition",
}
