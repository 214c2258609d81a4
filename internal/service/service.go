// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package service wires the weather provider, location resolution, decision
// core and presenter into the waybar output loop.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/vorlif/spreak"

	"jacketcheck/internal/config"
	"jacketcheck/internal/decision"
	"jacketcheck/internal/http"
	"jacketcheck/internal/locate"
	"jacketcheck/internal/locate/provider/geoip"
	"jacketcheck/internal/logger"
	"jacketcheck/internal/presenter"
	"jacketcheck/internal/weather"
	"jacketcheck/internal/weather/provider/openmeteo"
)

// Waybar CSS classes, one per answer.
const (
	OutputClassYes = "jacket-yes"
	OutputClassNo  = "jacket-no"
)

type outputData struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// Service runs the periodic fetch/decide/print loop.
type Service struct {
	config     *config.Config
	logger     *logger.Logger
	localizer  *spreak.Localizer
	scheduler  gocron.Scheduler
	source     weather.Source
	classifier *decision.Classifier
	presenter  *presenter.Presenter
	resolvers  []locate.Resolver
	output     io.Writer

	locationLock sync.RWMutex
	locationSet  bool
	location     weather.Location

	stateLock sync.RWMutex
	resultSet bool
	snapshot  *weather.Snapshot
	result    decision.Result
}

// New assembles the service from the given configuration. The Open-Meteo
// provider backs both the forecast source and the seasonal history lookups.
func New(conf *config.Config, log *logger.Logger, localizer *spreak.Localizer) (*Service, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	httpClient := http.New(log)
	provider, err := openmeteo.New(httpClient, clockwork.NewRealClock(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo provider: %w", err)
	}

	seasonal, err := decision.NewSeasonalEstimator(provider, clockwork.NewRealClock(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create seasonal estimator: %w", err)
	}
	classifier, err := decision.NewClassifier(seasonal)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	pres, err := presenter.New(conf, localizer)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	service := &Service{
		config:     conf,
		logger:     log,
		localizer:  localizer,
		scheduler:  scheduler,
		source:     provider,
		classifier: classifier,
		presenter:  pres,
		output:     os.Stdout,
	}

	if conf.Location != "" {
		static, err := locate.NewStaticResolver(conf.Location, provider)
		if err != nil {
			return nil, fmt.Errorf("failed to create static location resolver: %w", err)
		}
		service.resolvers = append(service.resolvers, static)
	}
	if !conf.GeoLocation.DisableGeoIP {
		fallback, err := geoip.NewGeoIPResolver(httpClient)
		if err != nil {
			return nil, fmt.Errorf("failed to create GeoIP resolver: %w", err)
		}
		service.resolvers = append(service.resolvers, fallback)
	}
	if len(service.resolvers) == 0 {
		return nil, fmt.Errorf("no location resolvers configured, set a location or enable GeoIP")
	}

	return service, nil
}

// Run starts the scheduled jobs and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.createScheduledJob(ctx, s.config.Intervals.Output, s.printResult,
		"decision_output_job"); err != nil {
		return err
	}
	if err := s.createScheduledJob(ctx, s.config.Intervals.WeatherUpdate, s.updateWeather,
		"weather_update_job"); err != nil {
		return err
	}
	s.scheduler.Start()

	// First output without waiting for the first interval tick
	s.updateWeather(ctx)
	s.printResult(ctx)

	<-ctx.Done()
	return s.scheduler.Shutdown()
}

// RunOnce performs a single fetch/decide/print cycle, for one-shot invocations
// outside of waybar's continuous mode.
func (s *Service) RunOnce(ctx context.Context) error {
	if err := s.fetchAndDecide(ctx); err != nil {
		return err
	}
	s.printResult(ctx)
	return nil
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration,
	task func(context.Context), jobName string,
) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

// updateWeather is the scheduled variant of fetchAndDecide. Errors are logged
// and swallowed so a failed fetch leaves the previous result on display.
func (s *Service) updateWeather(ctx context.Context) {
	if err := s.fetchAndDecide(ctx); err != nil {
		s.logger.Error("failed to update weather data", logger.Err(err))
	}
}

// fetchAndDecide resolves the location if necessary, fetches a fresh snapshot
// and runs the decision core over it.
func (s *Service) fetchAndDecide(ctx context.Context) error {
	location, err := s.resolveLocation(ctx)
	if err != nil {
		return err
	}

	snapshot, err := s.source.CurrentAndForecast(ctx, location.Lat, location.Lon)
	if err != nil {
		return fmt.Errorf("failed to fetch weather data: %w", err)
	}
	snapshot.Location = location
	if snapshot.Timezone == "" {
		snapshot.Timezone = location.Timezone
	}

	result := s.classifier.Decide(ctx, snapshot)
	s.logger.Debug("decision made", slog.String("answer", string(result.Answer)),
		slog.String("jacket", result.JacketType), slog.Int("temp", snapshot.Current.Temp),
		slog.Int("climate_bias", result.Adjustments.Climate),
		slog.Int("seasonal_bias", result.Adjustments.Seasonal))

	s.stateLock.Lock()
	s.snapshot = snapshot
	s.result = result
	s.resultSet = true
	s.stateLock.Unlock()

	return nil
}

// resolveLocation returns the cached location or walks the resolver chain.
func (s *Service) resolveLocation(ctx context.Context) (weather.Location, error) {
	s.locationLock.RLock()
	if s.locationSet {
		defer s.locationLock.RUnlock()
		return s.location, nil
	}
	s.locationLock.RUnlock()

	location, err := locate.Resolve(ctx, s.resolvers...)
	if err != nil {
		return weather.Location{}, fmt.Errorf("failed to resolve location: %w", err)
	}
	s.logger.Debug("location resolved", slog.String("name", location.DisplayName()),
		slog.Float64("lat", location.Lat), slog.Float64("lon", location.Lon))

	s.locationLock.Lock()
	s.location = location
	s.locationSet = true
	s.locationLock.Unlock()

	return location, nil
}

// printResult renders the current decision and writes the waybar JSON line.
func (s *Service) printResult(context.Context) {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()
	if !s.resultSet {
		return
	}

	data := s.presenter.BuildDisplayData(s.snapshot, s.result)
	text, tooltip, err := s.presenter.Render(data)
	if err != nil {
		s.logger.Error("failed to render decision output", logger.Err(err))
		return
	}

	class := OutputClassNo
	if s.result.Answer == decision.AnswerYes {
		class = OutputClassYes
	}
	output := outputData{
		Text:    text,
		Tooltip: tooltip,
		Class:   class,
	}
	if err = json.NewEncoder(s.output).Encode(output); err != nil {
		s.logger.Error("failed to encode decision output", logger.Err(err))
	}
}
