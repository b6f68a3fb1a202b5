package weather

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lox/weatherlookup/internal/metrics"
	"github.com/lox/weatherlookup/internal/models"
)

// Instrumented wraps a Source and records fetch outcomes and latency.
type Instrumented struct {
	source Source
}

func NewInstrumented(source Source) *Instrumented {
	return &Instrumented{source: source}
}

func (i *Instrumented) Name() string {
	return i.source.Name()
}

// Unwrap returns the decorated source.
func (i *Instrumented) Unwrap() Source {
	return i.source
}

func (i *Instrumented) Fetch(ctx context.Context, city string) (*models.WeatherResponse, error) {
	start := time.Now()
	resp, err := i.source.Fetch(ctx, city)
	metrics.WeatherFetchLatency.WithLabelValues(i.source.Name()).Observe(time.Since(start).Seconds())

	outcome := Outcome(err)
	metrics.WeatherFetchesTotal.WithLabelValues(i.source.Name(), outcome).Inc()
	if err != nil {
		log.Printf("weather: fetch %q from %s: %s: %v", city, i.source.Name(), outcome, err)
	}
	return resp, err
}

// Outcome classifies a fetch error for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrLocationNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unavailable"
	}
}

var (
	_ Source = (*Mock)(nil)
	_ Source = (*OpenWeatherMap)(nil)
	_ Source = (*Instrumented)(nil)
)
