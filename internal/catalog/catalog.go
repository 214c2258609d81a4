// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package catalog holds static jacket product metadata for display tooltips.
// It is presentation-only data and never feeds back into the decision.
package catalog

import "jacketcheck/internal/decision"

// Jacket describes one jacket recommendation for display purposes.
type Jacket struct {
	Name         string
	Icon         string
	WarmthClass  string
	ComfortRange string
	Waterproof   bool
	Blurb        string
}

var jackets = map[string]Jacket{
	decision.JacketHeavy: {
		Name:         "Heavy jacket or coat",
		Icon:         "🧥",
		WarmthClass:  "heavy",
		ComfortRange: "below 45°F",
		Waterproof:   false,
		Blurb:        "Insulated parka or wool coat territory. Layer up underneath on the really cold days.",
	},
	decision.JacketMedium: {
		Name:         "Medium jacket",
		Icon:         "🧥",
		WarmthClass:  "medium",
		ComfortRange: "45°F to 60°F",
		Waterproof:   false,
		Blurb:        "A fleece-lined or softshell jacket. Comfortable for brisk days without bulking up.",
	},
	decision.JacketLight: {
		Name:         "Light jacket or sweater",
		Icon:         "🧶",
		WarmthClass:  "light",
		ComfortRange: "60°F to 75°F",
		Waterproof:   false,
		Blurb:        "A light windbreaker, cardigan or sweater takes the edge off a cool day.",
	},
}

// Lookup returns the catalog entry for a jacket recommendation. The second
// return value is false for the empty recommendation (no jacket needed).
func Lookup(jacketType string) (Jacket, bool) {
	jacket, ok := jackets[jacketType]
	return jacket, ok
}
