package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lox/weatherlookup/internal/metrics"
	"github.com/lox/weatherlookup/internal/models"
)

func TestValidate(t *testing.T) {
	if err := Validate("New York"); err != nil {
		t.Errorf("Validate(New York) = %v", err)
	}
	if err := Validate(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate(\"\") = %v, want ErrInvalidInput", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantName string
		wantErr  bool
	}{
		{"default is mock", Config{}, "Mock", false},
		{"mock", Config{Kind: KindMock}, "Mock", false},
		{"openweathermap", Config{Kind: KindOpenWeatherMap, APIKey: "k"}, "OpenWeatherMap", false},
		{"openweathermap without key", Config{Kind: KindOpenWeatherMap}, "", true},
		{"unknown", Config{Kind: "metoffice"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if src.Name() != tt.wantName {
				t.Errorf("Name = %q, want %q", src.Name(), tt.wantName)
			}
			if _, ok := src.(*Instrumented); !ok {
				t.Errorf("source %T is not instrumented", src)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{fmt.Errorf("%w: empty", ErrInvalidInput), "invalid_input"},
		{fmt.Errorf("%w: Atlantis", ErrLocationNotFound), "not_found"},
		{fmt.Errorf("%w: status 500", ErrSourceUnavailable), "unavailable"},
		{context.Canceled, "canceled"},
	}
	for _, tt := range tests {
		if got := Outcome(tt.err); got != tt.want {
			t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

type failingSource struct{ err error }

func (f failingSource) Name() string { return "failing" }

func (f failingSource) Fetch(ctx context.Context, city string) (*models.WeatherResponse, error) {
	return nil, f.err
}

func TestInstrumented_CountsOutcomes(t *testing.T) {
	src := NewInstrumented(failingSource{err: fmt.Errorf("%w: boom", ErrSourceUnavailable)})
	before := testutil.ToFloat64(metrics.WeatherFetchesTotal.WithLabelValues("failing", "unavailable"))

	if _, err := src.Fetch(context.Background(), "Paris"); !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}

	after := testutil.ToFloat64(metrics.WeatherFetchesTotal.WithLabelValues("failing", "unavailable"))
	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
	if src.Unwrap().Name() != "failing" {
		t.Errorf("Unwrap().Name() = %q", src.Unwrap().Name())
	}
}
