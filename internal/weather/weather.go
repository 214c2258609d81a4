// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package weather defines the domain types shared between the weather data
// providers and the decision core. All temperatures are degrees Fahrenheit and
// all wind speeds are miles per hour; Celsius only ever exists as a derived
// presentation value.
package weather

import (
	"context"
	"time"

	"jacketcheck/internal/vartype"
)

// Condition is a coarse weather condition label derived from the provider's
// native weather code.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionFog          Condition = "Fog"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionUnknown      Condition = "Unknown"
)

// Location identifies a place on earth. Timezone is the IANA timezone name as
// reported by the location source.
type Location struct {
	Name     string
	Admin    string
	Country  string
	Lat      float64
	Lon      float64
	Timezone string
}

// DisplayName returns the location name with the administrative region
// appended, the way the decision core expects city names to be shaped
// (e.g. "Chicago, IL").
func (l Location) DisplayName() string {
	if l.Admin == "" {
		return l.Name
	}
	return l.Name + ", " + l.Admin
}

// Current holds the current conditions of a weather snapshot.
type Current struct {
	Temp        int
	FeelsLike   int
	Humidity    vartype.VarInt
	WindSpeed   int
	Conditions  Condition
	Description string
	Icon        string
}

// Outlook is a single short-range forecast point. WindSpeed is only delivered
// for the six-hour point and stays unset for the twelve-hour point.
type Outlook struct {
	Temp       int
	Conditions Condition
	WindSpeed  vartype.VarInt
}

// Precipitation describes the current and near-term precipitation situation.
type Precipitation struct {
	Chance    int
	IsRaining bool
	IsSnowing bool
}

// Snapshot is one complete weather observation. It is immutable for the
// duration of a decision call.
type Snapshot struct {
	Location      Location
	Current       Current
	SixHour       Outlook
	TwelveHour    Outlook
	Precipitation Precipitation
	Timestamp     time.Time
	Timezone      string
}

// LocalTime returns the snapshot capture time in the snapshot's timezone. An
// unknown or empty timezone falls back to the timestamp as captured.
func (s *Snapshot) LocalTime() time.Time {
	if s.Timezone == "" {
		return s.Timestamp
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return s.Timestamp
	}
	return s.Timestamp.In(loc)
}

// DailyMean is a single day of historical temperature data. An unset MeanTemp
// models a day the upstream archive has no finalized data for.
type DailyMean struct {
	Day      time.Time
	MeanTemp vartype.VarFloat64
}

// Source is implemented by weather API backends that deliver current conditions
// and the short-range forecast.
type Source interface {
	Name() string
	CurrentAndForecast(ctx context.Context, lat, lon float64) (*Snapshot, error)
}

// HistorySource is implemented by backends that deliver historical daily mean
// temperatures for a coordinate and date range.
type HistorySource interface {
	Name() string
	HistoricalDailyMeans(ctx context.Context, lat, lon float64, start, end time.Time) ([]DailyMean, error)
}

// Searcher is implemented by geocoding backends that resolve a free-form query
// into candidate locations.
type Searcher interface {
	Name() string
	SearchLocations(ctx context.Context, query string) ([]Location, error)
}
