// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package decision

import "testing"

func TestComposeReasoning(t *testing.T) {
	t.Run("clause order is fixed per branch", func(t *testing.T) {
		tests := []struct {
			name         string
			temp         int
			windSpeed    int
			sixHourTemp  int
			factors      Factors
			branch       branch
			climateBias  int
			seasonalBias int
			want         string
		}{
			{
				name: "very cold base clause",
				temp: 20, sixHourTemp: 18,
				branch: branchVeryCold,
				want:   "It's 20°F",
			},
			{
				name: "cold with wind and drop",
				temp: 40, windSpeed: 20, sixHourTemp: 30,
				factors: Factors{IsWindy: true, WillGetColder: true},
				branch:  branchCold,
				want:    "It's 40°F, and windy (20 mph), dropping to 30°F later",
			},
			{
				name: "cool with wind",
				temp: 58, windSpeed: 16, sixHourTemp: 56,
				factors: Factors{IsWindy: true},
				branch:  branchCool,
				want:    "It's a cool 58°F, with some wind (16 mph)",
			},
			{
				name: "cool getting cooler",
				temp: 58, sixHourTemp: 50,
				factors: Factors{WillGetColder: true},
				branch:  branchCool,
				want:    "It's a cool 58°F, getting cooler later",
			},
			{
				name: "warm staying warm",
				temp: 80, sixHourTemp: 78,
				branch: branchWarm,
				want:   "It's 80°F and comfortable, staying warm through the day",
			},
			{
				name: "warm but cooling omits the staying warm clause",
				temp: 80, sixHourTemp: 70,
				factors: Factors{WillGetColder: true},
				branch:  branchWarm,
				want:    "It's 80°F and comfortable",
			},
			{
				name: "warm zone commentary on a jacket branch",
				temp: 58, sixHourTemp: 56,
				branch: branchCool, climateBias: BiasWarmZone,
				want: "It's a cool 58°F, but locals in warm climates tend to bundle up at this temperature",
			},
			{
				name: "cold zone commentary on the warm branch",
				temp: 80, sixHourTemp: 78,
				branch: branchWarm, climateBias: BiasColdZone,
				want: "It's 80°F and comfortable, staying warm through the day, and people here are used to much colder weather",
			},
			{
				name: "cold zone commentary is absent on jacket branches",
				temp: 40, sixHourTemp: 38,
				branch: branchCold, climateBias: BiasColdZone,
				want: "It's 40°F",
			},
			{
				name: "cold recent period commentary",
				temp: 40, sixHourTemp: 38,
				branch: branchCold, seasonalBias: 8,
				want: "It's 40°F, It's been very cold lately, so this feels warmer than usual",
			},
			{
				name: "warm recent period commentary",
				temp: 80, sixHourTemp: 78,
				branch: branchWarm, seasonalBias: -8,
				want: "It's 80°F and comfortable, staying warm through the day, It's been very warm lately, so this feels cooler than usual",
			},
			{
				name: "a small seasonal bias adds no commentary",
				temp: 40, sixHourTemp: 38,
				branch: branchCold, seasonalBias: 5,
				want: "It's 40°F",
			},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				got := composeReasoning(tc.temp, tc.windSpeed, tc.sixHourTemp, tc.factors,
					tc.branch, tc.climateBias, tc.seasonalBias)
				if got != tc.want {
					t.Errorf("expected reasoning %q, got %q", tc.want, got)
				}
			})
		}
	})
}

func TestRainAdvice(t *testing.T) {
	t.Run("the advisory follows how cold it already is", func(t *testing.T) {
		rainy := Factors{IsRainy: true}
		tests := []struct {
			name    string
			factors Factors
			branch  branch
			want    string
		}{
			{"no rain means no advisory", Factors{}, branchCold, ""},
			{"very cold rain calls for waterproof", rainy, branchVeryCold,
				"Make it a waterproof one, rain is on the way"},
			{"cold rain calls for waterproof", rainy, branchCold,
				"Make it a waterproof one, rain is on the way"},
			{"cool rain calls for light rain gear", rainy, branchCool,
				"A light rain jacket would be a good pick"},
			{"warm rain calls for rain gear only", rainy, branchWarm,
				"No jacket needed for warmth, but bring some rain gear"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if got := rainAdvice(tc.factors, tc.branch); got != tc.want {
					t.Errorf("expected advice %q, got %q", tc.want, got)
				}
			})
		}
	})
}
