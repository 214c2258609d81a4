// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package decision

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"jacketcheck/internal/logger"
	"jacketcheck/internal/weather"
)

const (
	// DefaultSeasonalTTL is how long a fetched seasonal bias stays valid for a
	// location before the historical data is fetched again.
	DefaultSeasonalTTL = 24 * time.Hour

	// historyWindowDays is the length of the trailing window of daily mean
	// temperatures the bias is derived from. The window ends yesterday since
	// data for the current day is not finalized upstream.
	historyWindowDays = 30

	// coordPrecision is the precision used to quantize cache coordinates
	// (0.01 degrees ≈ 1.1 km)
	coordPrecision = 1e-2
)

type seasonalKey struct {
	LatQ int32
	LonQ int32
}

type seasonalEntry struct {
	Bias      int
	FetchedAt time.Time
}

// SeasonalEstimator derives a signed °F bias from the trailing 30-day mean
// temperature of a location and caches it per quantized coordinate. It is the
// only stateful part of the decision core. It fails open: any fetch problem
// yields a bias of 0 and is not cached, so the next call retries.
type SeasonalEstimator struct {
	source weather.HistorySource
	clock  clockwork.Clock
	logger *logger.Logger
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[seasonalKey]seasonalEntry
}

// NewSeasonalEstimator returns a new SeasonalEstimator on top of the given
// history source. The clock is injected so cache expiry is testable without
// wall-clock coupling.
func NewSeasonalEstimator(source weather.HistorySource, clock clockwork.Clock,
	log *logger.Logger,
) (*SeasonalEstimator, error) {
	if source == nil {
		return nil, fmt.Errorf("history source is required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &SeasonalEstimator{
		source: source,
		clock:  clock,
		logger: log,
		ttl:    DefaultSeasonalTTL,
		cache:  make(map[seasonalKey]seasonalEntry),
	}, nil
}

// Bias returns the seasonal adjustment for the given coordinates. On a cache
// miss it fetches the trailing daily mean temperatures through the history
// source, which is the only suspension point of a decision call.
func (e *SeasonalEstimator) Bias(ctx context.Context, lat, lon float64) int {
	key := newSeasonalKey(lat, lon)

	e.mu.RLock()
	entry, ok := e.cache[key]
	if ok && e.clock.Now().Sub(entry.FetchedAt) < e.ttl {
		bias := entry.Bias
		e.mu.RUnlock()
		return bias
	}
	e.mu.RUnlock()

	now := e.clock.Now()
	end := now.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(historyWindowDays - 1))

	means, err := e.source.HistoricalDailyMeans(ctx, lat, lon, start, end)
	if err != nil {
		e.logger.Warn("failed to fetch historical daily means, using neutral seasonal bias",
			logger.Err(err))
		return 0
	}

	// Days without finalized data are delivered unset and do not count.
	means = slices.DeleteFunc(means, func(m weather.DailyMean) bool {
		return !m.MeanTemp.IsSet()
	})
	if len(means) == 0 {
		e.logger.Debug("no usable historical daily means, using neutral seasonal bias")
		return 0
	}

	sum := 0.0
	for _, m := range means {
		sum += m.MeanTemp.Value()
	}
	bias := biasFromAverage(sum / float64(len(means)))

	// Last successful fetch wins.
	e.mu.Lock()
	e.cache[key] = seasonalEntry{Bias: bias, FetchedAt: now}
	e.mu.Unlock()

	return bias
}

// biasFromAverage maps a 30-day average temperature (°F) to a seasonal bias.
// An unusually warm stretch lowers the jacket bar, an unusually cold one
// raises it, since people expect worse.
func biasFromAverage(avgTemp float64) int {
	switch {
	case avgTemp > 75:
		return -8
	case avgTemp > 70:
		return -5
	case avgTemp < 30:
		return 8
	case avgTemp < 40:
		return 5
	default:
		return 0
	}
}

func quantizeCoord(val float64) int32 {
	return int32(math.Round(val / coordPrecision))
}

func newSeasonalKey(lat, lon float64) seasonalKey {
	return seasonalKey{
		LatQ: quantizeCoord(lat),
		LonQ: quantizeCoord(lon),
	}
}
