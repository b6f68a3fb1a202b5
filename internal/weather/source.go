// Package weather produces weather responses for a location name. A Source
// is either the built-in mock generator or a real provider; callers select
// one through Config and never depend on which they got.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lox/weatherlookup/internal/models"
)

var (
	// ErrInvalidInput is returned for an empty or whitespace-only city.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLocationNotFound means the provider had no match for the city.
	ErrLocationNotFound = errors.New("location not found")
	// ErrSourceUnavailable covers network and provider failures.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// Source fetches the current conditions and forecast for a city. A
// response is all-or-nothing: on error the returned response is nil.
type Source interface {
	Fetch(ctx context.Context, city string) (*models.WeatherResponse, error)
	Name() string
}

// Validate rejects city names that must never reach a provider.
func Validate(city string) error {
	if strings.TrimSpace(city) == "" {
		return fmt.Errorf("%w: city name is empty", ErrInvalidInput)
	}
	return nil
}

const (
	KindMock           = "mock"
	KindOpenWeatherMap = "openweathermap"
)

type Config struct {
	Kind           string
	APIKey         string
	MockDelay      time.Duration
	MockSeed       uint64 // zero seeds from the clock
	ForecastLabels LabelMode
}

// New builds the configured source, wrapped with fetch instrumentation.
func New(cfg Config) (Source, error) {
	var src Source
	switch cfg.Kind {
	case "", KindMock:
		opts := []MockOption{WithDelay(cfg.MockDelay), WithLabels(cfg.ForecastLabels)}
		if cfg.MockSeed != 0 {
			opts = append(opts, WithSeed(cfg.MockSeed))
		}
		src = NewMock(opts...)
	case KindOpenWeatherMap:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%s source requires an API key", KindOpenWeatherMap)
		}
		src = NewOpenWeatherMap(cfg.APIKey)
	default:
		return nil, fmt.Errorf("unknown weather source %q", cfg.Kind)
	}
	return NewInstrumented(src), nil
}
