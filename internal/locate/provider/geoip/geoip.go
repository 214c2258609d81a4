// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package geoip resolves an approximate location from the caller's public IP
// address. It is the fallback when no location is configured.
package geoip

import (
	"context"
	"fmt"
	"time"

	"jacketcheck/internal/http"
	"jacketcheck/internal/weather"
)

const (
	APIEndpoint   = "https://reallyfreegeoip.org/json/"
	LookupTimeout = time.Second * 5
)

// GeoIPResolver resolves a location through a GeoIP lookup.
type GeoIPResolver struct {
	name     string
	http     *http.Client
	endpoint string
}

type apiResult struct {
	IP          string  `json:"ip"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country_name"`
	RegionCode  string  `json:"region_code,omitempty"`
	Region      string  `json:"region_name,omitempty"`
	City        string  `json:"city,omitempty"`
	TimeZone    string  `json:"time_zone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// NewGeoIPResolver returns a new GeoIP-based location resolver.
func NewGeoIPResolver(httpClient *http.Client) (*GeoIPResolver, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is required")
	}
	return &GeoIPResolver{
		name:     "geoip",
		http:     httpClient,
		endpoint: APIEndpoint,
	}, nil
}

func (r *GeoIPResolver) Name() string {
	return r.name
}

// Resolve performs the GeoIP lookup. A lookup that cannot place the caller in
// at least a city is treated as failed, since the decision core keys its
// regional bias on the city name.
func (r *GeoIPResolver) Resolve(ctx context.Context) (weather.Location, error) {
	result := new(apiResult)
	code, err := r.http.GetWithTimeout(ctx, r.endpoint, result, nil, LookupTimeout)
	if err != nil {
		return weather.Location{}, fmt.Errorf("failed to get geolocation data from API: %w", err)
	}
	if code != 200 {
		return weather.Location{}, fmt.Errorf("GeoIP API returned non-positive response code: %d", code)
	}
	if result.City == "" {
		return weather.Location{}, fmt.Errorf("GeoIP lookup did not resolve to a city")
	}

	return weather.Location{
		Name:     result.City,
		Admin:    result.Region,
		Country:  result.Country,
		Lat:      result.Latitude,
		Lon:      result.Longitude,
		Timezone: result.TimeZone,
	}, nil
}
