// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements the weather collaborators on top of the
// Open-Meteo forecast, archive and geocoding APIs. It delivers everything in
// Fahrenheit and mph, the internal units of jacketcheck.
package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/hectormalot/omgo"
	"github.com/jonboulle/clockwork"

	"jacketcheck/internal/http"
	"jacketcheck/internal/logger"
	"jacketcheck/internal/vartype"
	"jacketcheck/internal/weather"
)

const (
	name              = "open-meteo"
	archiveEndpoint   = "https://archive-api.open-meteo.com/v1/archive"
	geocodingEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	apiTimeout        = time.Second * 10

	// apiDateFormat is the date layout of the archive API.
	apiDateFormat = "2006-01-02"
)

var hourlyMetrics = []string{
	"temperature_2m", "apparent_temperature", "relative_humidity_2m",
	"precipitation_probability", "weather_code", "wind_speed_10m",
}

// OpenMeteo implements weather.Source, weather.HistorySource and
// weather.Searcher against the public Open-Meteo APIs.
type OpenMeteo struct {
	om    omgo.Client
	http  *http.Client
	clock clockwork.Clock
	log   *logger.Logger

	archiveURL   string
	geocodingURL string
}

// New returns a new Open-Meteo backed provider.
func New(httpClient *http.Client, clock clockwork.Clock, log *logger.Logger) (*OpenMeteo, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	omclient, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}
	return &OpenMeteo{
		om:           omclient,
		http:         httpClient,
		clock:        clock,
		log:          log,
		archiveURL:   archiveEndpoint,
		geocodingURL: geocodingEndpoint,
	}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

// CurrentAndForecast fetches the current conditions plus the six and twelve
// hour forecast points. The returned snapshot carries bare coordinates; the
// caller enriches the location and timezone from its resolved location.
func (o *OpenMeteo) CurrentAndForecast(ctx context.Context, lat, lon float64) (*weather.Snapshot, error) {
	loc, err := omgo.NewLocation(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo location from coordinates: %w", err)
	}

	opts := &omgo.Options{
		Timezone:          "auto",
		TemperatureUnit:   "fahrenheit",
		WindspeedUnit:     "mph",
		PrecipitationUnit: "inch",
		HourlyMetrics:     hourlyMetrics,
	}
	forecast, err := o.om.Forecast(ctx, loc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve forecast data from Open-Meteo API: %w", err)
	}

	return o.buildSnapshot(forecast, lat, lon), nil
}

// buildSnapshot maps an Open-Meteo forecast into a weather snapshot. Hourly
// lookups are anchored on the API's own current-weather time so the snapshot
// is consistent within the API's time base.
func (o *OpenMeteo) buildSnapshot(forecast *omgo.Forecast, lat, lon float64) *weather.Snapshot {
	anchor := forecast.CurrentWeather.Time.Truncate(time.Hour)
	nowIdx := o.hourIndex(forecast, anchor)
	sixIdx := o.hourIndex(forecast, anchor.Add(6*time.Hour))
	twelveIdx := o.hourIndex(forecast, anchor.Add(12*time.Hour))

	code := int(forecast.CurrentWeather.WeatherCode)
	condition := conditionFromWMO(code)
	current := weather.Current{
		Temp:        round(forecast.CurrentWeather.Temperature),
		FeelsLike:   round(forecast.CurrentWeather.Temperature),
		WindSpeed:   round(forecast.CurrentWeather.WindSpeed),
		Conditions:  condition,
		Description: describeWMO(code),
		Icon:        iconID(condition),
	}

	precipitation := weather.Precipitation{
		IsRaining: isRainCode(code),
		IsSnowing: isSnowCode(code),
	}
	if nowIdx >= 0 {
		if v, ok := hourlyValue(forecast, "apparent_temperature", nowIdx); ok {
			current.FeelsLike = round(v)
		}
		if v, ok := hourlyValue(forecast, "relative_humidity_2m", nowIdx); ok {
			current.Humidity.Set(round(v))
		}
		if v, ok := hourlyValue(forecast, "precipitation_probability", nowIdx); ok {
			precipitation.Chance = round(v)
		}
	}

	snapshot := &weather.Snapshot{
		Location:      weather.Location{Lat: lat, Lon: lon},
		Current:       current,
		SixHour:       o.outlookAt(forecast, sixIdx, true),
		TwelveHour:    o.outlookAt(forecast, twelveIdx, false),
		Precipitation: precipitation,
		Timestamp:     o.clock.Now(),
	}
	return snapshot
}

// outlookAt maps one hourly index into a forecast point. Wind is only carried
// for the six-hour point.
func (o *OpenMeteo) outlookAt(forecast *omgo.Forecast, idx int, withWind bool) weather.Outlook {
	outlook := weather.Outlook{Conditions: weather.ConditionUnknown}
	if idx < 0 {
		o.log.Debug("forecast hour not found in hourly data, returning empty outlook")
		return outlook
	}
	if v, ok := hourlyValue(forecast, "temperature_2m", idx); ok {
		outlook.Temp = round(v)
	}
	if v, ok := hourlyValue(forecast, "weather_code", idx); ok {
		outlook.Conditions = conditionFromWMO(round(v))
	}
	if withWind {
		if v, ok := hourlyValue(forecast, "wind_speed_10m", idx); ok {
			outlook.WindSpeed = vartype.NewVariable(round(v))
		}
	}
	return outlook
}

// hourIndex returns the index of the given hour in the hourly time series, or
// the nearest hour when no exact match exists, or -1 for an empty series.
func (o *OpenMeteo) hourIndex(forecast *omgo.Forecast, target time.Time) int {
	idx := -1
	var best time.Duration
	for i, ht := range forecast.HourlyTimes {
		diff := ht.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if idx == -1 || diff < best {
			idx = i
			best = diff
		}
		if diff == 0 {
			break
		}
	}
	return idx
}

func hourlyValue(forecast *omgo.Forecast, metric string, idx int) (float64, bool) {
	values, ok := forecast.HourlyMetrics[metric]
	if !ok || idx >= len(values) {
		return 0, false
	}
	return values[idx], true
}

type archiveResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     struct {
		Time     []string   `json:"time"`
		MeanTemp []*float64 `json:"temperature_2m_mean"`
	} `json:"daily"`
}

// HistoricalDailyMeans fetches daily mean temperatures (°F) for the given
// coordinate and date range from the Open-Meteo archive API. Days the archive
// has not finalized yet come back as unset values.
func (o *OpenMeteo) HistoricalDailyMeans(ctx context.Context, lat, lon float64,
	start, end time.Time,
) ([]weather.DailyMean, error) {
	res := new(archiveResponse)

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", lat))
	query.Set("longitude", fmt.Sprintf("%f", lon))
	query.Set("start_date", start.Format(apiDateFormat))
	query.Set("end_date", end.Format(apiDateFormat))
	query.Set("daily", "temperature_2m_mean")
	query.Set("temperature_unit", "fahrenheit")
	query.Set("timezone", "auto")

	code, err := o.http.GetWithTimeout(ctx, o.archiveURL, res, query, apiTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve historical data from Open-Meteo archive API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("Open-Meteo archive API returned non-positive response code: %d", code)
	}

	means := make([]weather.DailyMean, 0, len(res.Daily.Time))
	for i, date := range res.Daily.Time {
		day, err := time.Parse(apiDateFormat, date)
		if err != nil {
			o.log.Debug("skipping unparsable archive date", logger.Err(err))
			continue
		}
		mean := weather.DailyMean{Day: day}
		if i < len(res.Daily.MeanTemp) && res.Daily.MeanTemp[i] != nil {
			mean.MeanTemp = vartype.NewVariable(*res.Daily.MeanTemp[i])
		}
		means = append(means, mean)
	}
	return means, nil
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// SearchLocations resolves a free-form query into candidate locations through
// the Open-Meteo geocoding API.
func (o *OpenMeteo) SearchLocations(ctx context.Context, searchQuery string) ([]weather.Location, error) {
	res := new(geocodingResponse)

	query := url.Values{}
	query.Set("name", searchQuery)
	query.Set("count", "10")
	query.Set("language", "en")
	query.Set("format", "json")

	code, err := o.http.GetWithTimeout(ctx, o.geocodingURL, res, query, apiTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve geocoding data from Open-Meteo API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("Open-Meteo geocoding API returned non-positive response code: %d", code)
	}

	locations := make([]weather.Location, 0, len(res.Results))
	for _, result := range res.Results {
		locations = append(locations, weather.Location{
			Name:     result.Name,
			Admin:    result.Admin1,
			Country:  result.Country,
			Lat:      result.Latitude,
			Lon:      result.Longitude,
			Timezone: result.Timezone,
		})
	}
	return locations, nil
}

func round(val float64) int {
	if val < 0 {
		return int(val - 0.5)
	}
	return int(val + 0.5)
}
