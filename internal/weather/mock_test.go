package weather

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

// constRand always returns the same offset, clamped to the range.
type constRand struct{ v int }

func (r constRand) IntN(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMock_Ranges(t *testing.T) {
	m := NewMock(WithDelay(0), WithSeed(42))

	for i := 0; i < 200; i++ {
		resp, err := m.Fetch(context.Background(), "Paris")
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}

		c := resp.Current
		if c.Location != "Paris" {
			t.Fatalf("Location = %q, want Paris", c.Location)
		}
		if c.TemperatureCelsius < 15 || c.TemperatureCelsius > 34 {
			t.Errorf("temperature %v outside [15,34]", c.TemperatureCelsius)
		}
		if c.HumidityPercent < 40 || c.HumidityPercent > 79 {
			t.Errorf("humidity %d outside [40,79]", c.HumidityPercent)
		}
		if c.WindSpeedKmh < 5 || c.WindSpeedKmh > 24 {
			t.Errorf("wind %v outside [5,24]", c.WindSpeedKmh)
		}

		if len(resp.Forecast) != 5 {
			t.Fatalf("len(Forecast) = %d, want 5", len(resp.Forecast))
		}
		for _, d := range resp.Forecast {
			if d.HighCelsius < 20 || d.HighCelsius > 34 {
				t.Errorf("high %v outside [20,34]", d.HighCelsius)
			}
			if d.LowCelsius < 10 || d.LowCelsius > 19 {
				t.Errorf("low %v outside [10,19]", d.LowCelsius)
			}
		}

		if len(resp.Hourly) != 24 {
			t.Fatalf("len(Hourly) = %d, want 24", len(resp.Hourly))
		}
		for _, h := range resp.Hourly {
			if h.TemperatureCelsius < 10 || h.TemperatureCelsius > 29 {
				t.Errorf("hourly temperature %v outside [10,29]", h.TemperatureCelsius)
			}
		}
	}
}

func TestMock_RangeBounds(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	low := NewMock(WithDelay(0), WithRand(constRand{0}), WithClock(fixedClock(now))).Generate("X", now)
	if low.Current.TemperatureCelsius != 15 || low.Current.HumidityPercent != 40 || low.Current.WindSpeedKmh != 5 {
		t.Errorf("minimum draws gave %+v", low.Current)
	}
	if low.Forecast[0].HighCelsius != 20 || low.Forecast[0].LowCelsius != 10 {
		t.Errorf("minimum forecast draws gave %+v", low.Forecast[0])
	}
	if low.Hourly[0].TemperatureCelsius != 10 {
		t.Errorf("minimum hourly draw gave %v", low.Hourly[0].TemperatureCelsius)
	}
	if low.Current.Condition != "Clear" || low.Current.Icon != mockIcons[0] {
		t.Errorf("first category = %q %q", low.Current.Condition, low.Current.Icon)
	}

	high := NewMock(WithDelay(0), WithRand(constRand{1000})).Generate("X", now)
	if high.Current.TemperatureCelsius != 34 || high.Current.HumidityPercent != 79 || high.Current.WindSpeedKmh != 24 {
		t.Errorf("maximum draws gave %+v", high.Current)
	}
	if high.Forecast[0].HighCelsius != 34 || high.Forecast[0].LowCelsius != 19 {
		t.Errorf("maximum forecast draws gave %+v", high.Forecast[0])
	}
	if high.Hourly[0].TemperatureCelsius != 29 {
		t.Errorf("maximum hourly draw gave %v", high.Hourly[0].TemperatureCelsius)
	}
	if high.Current.Condition != "Partly Cloudy" {
		t.Errorf("last category = %q", high.Current.Condition)
	}
}

func TestMock_HourlyWrapsAtMidnight(t *testing.T) {
	now := time.Date(2026, 10, 15, 23, 12, 0, 0, time.UTC)
	m := NewMock(WithDelay(0), WithSeed(1), WithClock(fixedClock(now)))

	resp, err := m.Fetch(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if resp.Hourly[0].Time != "23:00" {
		t.Errorf("hourly[0] = %q, want 23:00", resp.Hourly[0].Time)
	}
	if resp.Hourly[1].Time != "00:00" {
		t.Errorf("hourly[1] = %q, want 00:00", resp.Hourly[1].Time)
	}
	if resp.Hourly[2].Time != "01:00" {
		t.Errorf("hourly[2] = %q, want 01:00", resp.Hourly[2].Time)
	}
	for i, h := range resp.Hourly {
		want := fmt.Sprintf("%02d:00", (23+i)%24)
		if h.Time != want {
			t.Errorf("hourly[%d] = %q, want %q", i, h.Time, want)
		}
	}
}

func TestMock_ForecastLabels(t *testing.T) {
	// Thursday
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mode   LabelMode
		labels []string
	}{
		{"fixed", LabelsFixed, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
		{"actual", LabelsActual, []string{"Friday", "Saturday", "Sunday", "Monday", "Tuesday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMock(WithDelay(0), WithSeed(7), WithLabels(tt.mode))
			resp := m.Generate("Oslo", now)

			wantDates := []string{"10/16/2026", "10/17/2026", "10/18/2026", "10/19/2026", "10/20/2026"}
			for i, d := range resp.Forecast {
				if d.Label != tt.labels[i] {
					t.Errorf("forecast[%d].Label = %q, want %q", i, d.Label, tt.labels[i])
				}
				if d.Date != wantDates[i] {
					t.Errorf("forecast[%d].Date = %q, want %q", i, d.Date, wantDates[i])
				}
			}
		})
	}
}

func TestMock_SeedIsDeterministic(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	a := NewMock(WithSeed(99)).Generate("Lima", now)
	b := NewMock(WithSeed(99)).Generate("Lima", now)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different responses")
	}
}

func TestMock_RejectsEmptyCityBeforeDelay(t *testing.T) {
	m := NewMock(WithDelay(time.Hour))

	for _, city := range []string{"", "   ", "\t\n"} {
		start := time.Now()
		resp, err := m.Fetch(context.Background(), city)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Fetch(%q) err = %v, want ErrInvalidInput", city, err)
		}
		if resp != nil {
			t.Errorf("Fetch(%q) returned a partial response", city)
		}
		if time.Since(start) > time.Second {
			t.Errorf("Fetch(%q) waited before rejecting", city)
		}
	}
}

func TestMock_AcceptsNonsenseCity(t *testing.T) {
	m := NewMock(WithDelay(0))
	resp, err := m.Fetch(context.Background(), " zzqx!! ")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if resp.Current.Location != " zzqx!! " {
		t.Errorf("Location = %q, want verbatim echo", resp.Current.Location)
	}
}

func TestMock_DelayRespectsContext(t *testing.T) {
	m := NewMock(WithDelay(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Fetch(ctx, "Rome"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestMock_DelayIsApplied(t *testing.T) {
	m := NewMock(WithDelay(50 * time.Millisecond))
	start := time.Now()
	if _, err := m.Fetch(context.Background(), "Rome"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Fetch returned after %s, want at least 50ms", elapsed)
	}
}

func TestParseLabelMode(t *testing.T) {
	tests := []struct {
		in      string
		want    LabelMode
		wantErr bool
	}{
		{"", LabelsFixed, false},
		{"fixed", LabelsFixed, false},
		{"actual", LabelsActual, false},
		{"weekly", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLabelMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLabelMode(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLabelMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
