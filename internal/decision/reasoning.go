// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package decision

import (
	"fmt"
	"strings"
)

// composeReasoning renders the selected branch and factor set into the
// human-readable justification. The clause order is fixed and the output is
// byte-deterministic for identical inputs; the presenter relies on that.
func composeReasoning(temp, windSpeed, sixHourTemp int, factors Factors, b branch,
	climateBias, seasonalBias int,
) string {
	var clauses []string

	switch b {
	case branchVeryCold, branchCold:
		clauses = append(clauses, fmt.Sprintf("It's %d°F", temp))
		if factors.IsWindy {
			clauses = append(clauses, fmt.Sprintf("and windy (%d mph)", windSpeed))
		}
		if factors.WillGetColder {
			clauses = append(clauses, fmt.Sprintf("dropping to %d°F later", sixHourTemp))
		}
	case branchCool:
		clauses = append(clauses, fmt.Sprintf("It's a cool %d°F", temp))
		if factors.IsWindy {
			clauses = append(clauses, fmt.Sprintf("with some wind (%d mph)", windSpeed))
		}
		if factors.WillGetColder {
			clauses = append(clauses, "getting cooler later")
		}
	case branchWarm:
		clauses = append(clauses, fmt.Sprintf("It's %d°F and comfortable", temp))
		if !factors.WillGetColder {
			clauses = append(clauses, "staying warm through the day")
		}
	}

	if climateBias == BiasWarmZone && b != branchWarm {
		clauses = append(clauses, "but locals in warm climates tend to bundle up at this temperature")
	}
	if climateBias == BiasColdZone && b == branchWarm {
		clauses = append(clauses, "and people here are used to much colder weather")
	}

	if seasonalBias > 5 {
		clauses = append(clauses, "It's been very cold lately, so this feels warmer than usual")
	}
	if seasonalBias < -5 {
		clauses = append(clauses, "It's been very warm lately, so this feels cooler than usual")
	}

	return strings.Join(clauses, ", ")
}

// rainAdvice renders the rain advisory for the given branch. It never changes
// the main answer; it only suggests rain gear appropriate to how cold it
// already is. An empty string means no advisory.
func rainAdvice(factors Factors, b branch) string {
	if !factors.IsRainy {
		return ""
	}
	switch b {
	case branchVeryCold, branchCold:
		return "Make it a waterproof one, rain is on the way"
	case branchCool:
		return "A light rain jacket would be a good pick"
	default:
		return "No jacket needed for warmth, but bring some rain gear"
	}
}
