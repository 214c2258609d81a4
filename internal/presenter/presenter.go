// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package presenter turns a weather snapshot plus jacket decision into the
// waybar text and tooltip strings. All localization and unit conversion for
// display happens here; the decision core's reasoning text passes through
// untranslated.
package presenter

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/humanize"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"

	"jacketcheck/internal/catalog"
	"jacketcheck/internal/config"
	"jacketcheck/internal/decision"
	"jacketcheck/internal/units"
	"jacketcheck/internal/weather"
)

// DisplayData is the flat view handed to the text and tooltip templates.
type DisplayData struct {
	// Decision data
	Answer              string
	AnswerIcon          string
	JacketType          string
	Reasoning           string
	RainAdvice          string
	JacketBlurb         string
	JacketIcon          string
	JacketIconWithSpace string

	// Weather data
	Condition     string
	ConditionIcon string
	TempF         int
	TempC         int
	FeelsLikeF    int
	FeelsLikeC    int
	WindSpeed     int
	Humidity      string

	// Location and time data
	Location    string
	Latitude    float64
	Longitude   float64
	SunriseTime time.Time
	SunsetTime  time.Time
	UpdateTime  time.Time
}

// Presenter renders DisplayData through the configured templates.
type Presenter struct {
	TextTemplate    *template.Template
	TooltipTemplate *template.Template

	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
}

// New parses the configured templates and verifies they render against an
// empty DisplayData, so template errors surface at startup instead of on the
// first output tick.
func New(conf *config.Config, localizer *spreak.Localizer) (*Presenter, error) {
	pres := &Presenter{
		localizer: localizer,
		humanizer: humanize.MustNew().CreateHumanizer(language.Make(conf.Locale)),
	}

	tpl, err := template.New("text").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Text)
	if err != nil {
		return pres, fmt.Errorf("failed to parse text template: %w", err)
	}
	pres.TextTemplate = tpl

	tpl, err = template.New("tooltip").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Tooltip)
	if err != nil {
		return pres, fmt.Errorf("failed to parse tooltip template: %w", err)
	}
	pres.TooltipTemplate = tpl

	buf := bytes.NewBuffer(nil)
	if err = pres.TextTemplate.Execute(buf, DisplayData{}); err != nil {
		return pres, fmt.Errorf("failed to render text template: %w", err)
	}
	buf.Reset()
	if err = pres.TooltipTemplate.Execute(buf, DisplayData{}); err != nil {
		return pres, fmt.Errorf("failed to render tooltip template: %w", err)
	}

	return pres, nil
}

// BuildDisplayData flattens the snapshot and decision result into the template
// view. Sunrise and sunset are computed for the snapshot's local calendar day.
func (p *Presenter) BuildDisplayData(snap *weather.Snapshot, res decision.Result) DisplayData {
	data := DisplayData{
		Answer:     string(res.Answer),
		AnswerIcon: answerIcons[res.Answer],
		JacketType: res.JacketType,
		Reasoning:  res.Reasoning,
		RainAdvice: res.RainAdvice,

		Condition:     p.localizer.Get(conditionLabels[snap.Current.Conditions]),
		ConditionIcon: snap.Current.Icon,
		TempF:         snap.Current.Temp,
		TempC:         units.ToCelsius(snap.Current.Temp),
		FeelsLikeF:    snap.Current.FeelsLike,
		FeelsLikeC:    units.ToCelsius(snap.Current.FeelsLike),
		WindSpeed:     snap.Current.WindSpeed,
		Humidity:      snap.Current.Humidity.String(),

		Location:   snap.Location.DisplayName(),
		Latitude:   snap.Location.Lat,
		Longitude:  snap.Location.Lon,
		UpdateTime: snap.LocalTime(),
	}

	localTime := snap.LocalTime()
	data.SunriseTime, data.SunsetTime = sunrise.SunriseSunset(snap.Location.Lat, snap.Location.Lon,
		localTime.Year(), localTime.Month(), localTime.Day())
	data.SunriseTime = data.SunriseTime.In(localTime.Location())
	data.SunsetTime = data.SunsetTime.In(localTime.Location())

	if jacket, ok := catalog.Lookup(res.JacketType); ok {
		data.JacketBlurb = jacket.Blurb
		data.JacketIcon = jacket.Icon
		data.JacketIconWithSpace = EmojiWithSpace(jacket.Icon)
	}

	return data
}

// Render executes the text and tooltip templates against the given view.
func (p *Presenter) Render(data DisplayData) (text, tooltip string, err error) {
	textBuf := bytes.NewBuffer(nil)
	if err = p.TextTemplate.Execute(textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render text template: %w", err)
	}
	tooltipBuf := bytes.NewBuffer(nil)
	if err = p.TooltipTemplate.Execute(tooltipBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render tooltip template: %w", err)
	}
	return textBuf.String(), tooltipBuf.String(), nil
}
