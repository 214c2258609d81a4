// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package decision implements the jacket decision core: a rule-based
// classifier that maps a weather snapshot plus regional and seasonal context
// into a categorical recommendation with a human-readable justification.
//
// The classifier itself holds no mutable state and cannot fail. The only I/O
// behind a decision call is the seasonal bias fetch, which fails open to a
// neutral bias.
package decision

import (
	"context"
	"fmt"

	"jacketcheck/internal/weather"
)

// Answer is the categorical jacket recommendation.
type Answer string

const (
	AnswerYes Answer = "YES"
	AnswerNo  Answer = "NO"
)

// Jacket weight recommendations, one per YES branch.
const (
	JacketHeavy  = "Heavy jacket or coat"
	JacketMedium = "Medium jacket"
	JacketLight  = "Light jacket or sweater"
)

// branch is one of the four mutually exclusive temperature severity
// categories. Selection is strictly priority ordered, first match wins.
type branch int

const (
	branchVeryCold branch = iota
	branchCold
	branchCool
	branchWarm
)

// Factors is the set of booleans derived once per decision call. They are
// returned with the result for transparency and feed the reasoning composer.
type Factors struct {
	IsVeryCold      bool
	IsCold          bool
	IsCool          bool
	IsWarm          bool
	SignificantDrop bool
	IsRainy         bool
	IsWindy         bool
	IsEvening       bool
	IsMorning       bool
	WillGetColder   bool
}

// Adjustments records the bias values that shifted the thresholds for a
// decision, for transparency and debuggability.
type Adjustments struct {
	Climate  int
	Seasonal int
	Total    int
}

// Result is the outcome of one decision call. JacketType is non-empty exactly
// when Answer is YES. RainAdvice is empty when no rain is expected.
type Result struct {
	Answer      Answer
	JacketType  string
	Reasoning   string
	RainAdvice  string
	Factors     Factors
	Adjustments Adjustments
}

// Classifier combines effective temperature, adjusted thresholds,
// precipitation, wind and time-of-day factors into the final recommendation.
type Classifier struct {
	seasonal *SeasonalEstimator
}

// NewClassifier returns a new Classifier using the given seasonal estimator.
func NewClassifier(seasonal *SeasonalEstimator) (*Classifier, error) {
	if seasonal == nil {
		return nil, fmt.Errorf("seasonal estimator is required")
	}
	return &Classifier{seasonal: seasonal}, nil
}

// Decide maps the given weather snapshot into a jacket recommendation. The
// call may suspend once for the seasonal bias fetch; it has no error branch
// since that fetch fails open.
func (c *Classifier) Decide(ctx context.Context, snap *weather.Snapshot) Result {
	climateBias := ClimateBias(snap.Location.Lat, snap.Location.Lon, snap.Location.DisplayName())
	seasonalBias := c.seasonal.Bias(ctx, snap.Location.Lat, snap.Location.Lon)
	total := climateBias + seasonalBias

	thresholds := BaseThresholds().Adjusted(total)
	effTemp := EffectiveTemp(snap.Current.Temp, snap.Current.WindSpeed)
	factors := computeFactors(snap, thresholds, effTemp)

	b := selectBranch(factors)
	answer := AnswerYes
	jacketType := ""
	switch b {
	case branchVeryCold:
		jacketType = JacketHeavy
	case branchCold:
		jacketType = JacketMedium
	case branchCool:
		jacketType = JacketLight
	case branchWarm:
		answer = AnswerNo
	}

	return Result{
		Answer:     answer,
		JacketType: jacketType,
		Reasoning: composeReasoning(snap.Current.Temp, snap.Current.WindSpeed,
			snap.SixHour.Temp, factors, b, climateBias, seasonalBias),
		RainAdvice: rainAdvice(factors, b),
		Factors:    factors,
		Adjustments: Adjustments{
			Climate:  climateBias,
			Seasonal: seasonalBias,
			Total:    total,
		},
	}
}

// computeFactors derives the decision factors from the snapshot, the adjusted
// thresholds and the effective temperature. The local hour comes from the
// snapshot's own timestamp and timezone, never from the wall clock.
func computeFactors(snap *weather.Snapshot, thresholds ThresholdSet, effTemp int) Factors {
	hour := snap.LocalTime().Hour()
	tempDrop := snap.Current.Temp - snap.SixHour.Temp

	return Factors{
		IsVeryCold:      effTemp < thresholds.Heavy,
		IsCold:          effTemp < thresholds.Medium,
		IsCool:          effTemp < thresholds.Light,
		IsWarm:          effTemp >= thresholds.None,
		SignificantDrop: tempDrop >= significantDropDelta,
		IsRainy:         snap.Precipitation.IsRaining || snap.Precipitation.Chance > 50,
		IsWindy:         snap.Current.WindSpeed >= highWindSpeed,
		IsEvening:       hour >= 18 || hour < 6,
		IsMorning:       hour >= 6 && hour < 12,
		WillGetColder:   snap.SixHour.Temp < snap.Current.Temp-5,
	}
}

// selectBranch picks the severity branch. Rain and wind never force a YES on
// their own; they only color the reasoning and the rain advisory.
func selectBranch(factors Factors) branch {
	switch {
	case factors.IsVeryCold:
		return branchVeryCold
	case factors.IsCold:
		return branchCold
	case factors.IsCool:
		return branchCool
	default:
		return branchWarm
	}
}
