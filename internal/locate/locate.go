// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package locate resolves the location jacketcheck makes its decision for. A
// location can come from explicit configuration (raw coordinates or a place
// name resolved through geocoding search) or from a GeoIP fallback provider.
package locate

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jacketcheck/internal/weather"
)

// Resolver is implemented by each location backend.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context) (weather.Location, error)
}

// StaticResolver resolves a configured location string. A "lat,lon" pair is
// used directly; anything else is resolved through the geocoding searcher.
type StaticResolver struct {
	query    string
	searcher weather.Searcher
}

// NewStaticResolver returns a new StaticResolver for the given location string.
func NewStaticResolver(query string, searcher weather.Searcher) (*StaticResolver, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("location query is required")
	}
	if searcher == nil {
		return nil, fmt.Errorf("searcher is required")
	}
	return &StaticResolver{query: strings.TrimSpace(query), searcher: searcher}, nil
}

func (r *StaticResolver) Name() string {
	return "static"
}

// Resolve resolves the configured location string into a location.
func (r *StaticResolver) Resolve(ctx context.Context) (weather.Location, error) {
	if lat, lon, ok := parseCoordinates(r.query); ok {
		return weather.Location{Name: r.query, Lat: lat, Lon: lon}, nil
	}

	locations, err := r.searcher.SearchLocations(ctx, r.query)
	if err != nil {
		return weather.Location{}, fmt.Errorf("failed to search for location %q: %w", r.query, err)
	}
	if len(locations) == 0 {
		return weather.Location{}, fmt.Errorf("no location found for query %q", r.query)
	}
	return locations[0], nil
}

// Resolve walks the given resolvers in order and returns the first
// successfully resolved location.
func Resolve(ctx context.Context, resolvers ...Resolver) (weather.Location, error) {
	var lastErr error
	for _, resolver := range resolvers {
		location, err := resolver.Resolve(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		return location, nil
	}
	if lastErr != nil {
		return weather.Location{}, fmt.Errorf("no resolver returned a location: %w", lastErr)
	}
	return weather.Location{}, fmt.Errorf("no location resolvers configured")
}

// parseCoordinates parses a "lat,lon" pair. Coordinates outside the valid
// EPSG ranges do not parse.
func parseCoordinates(query string) (lat, lon float64, ok bool) {
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}
