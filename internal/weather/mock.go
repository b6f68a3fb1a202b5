package weather

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lox/weatherlookup/internal/models"
)

// DefaultMockDelay simulates network latency on every mock fetch.
const DefaultMockDelay = time.Second

var (
	mockConditions = []string{"Clear", "Cloudy", "Rainy", "Sunny", "Partly Cloudy"}
	mockIcons      = []string{"☀️", "⛅", "☁️", "🌧️", "🌤️"}
	fixedWeekdays  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

const (
	forecastDays = 5
	hourlyPoints = 24
	dateLayout   = "1/2/2006"
)

// LabelMode controls how forecast day labels are chosen.
type LabelMode string

const (
	// LabelsFixed pairs Monday..Friday with the next five dates regardless
	// of the weekday each date actually falls on.
	LabelsFixed LabelMode = "fixed"
	// LabelsActual labels each day with its real weekday.
	LabelsActual LabelMode = "actual"
)

func ParseLabelMode(s string) (LabelMode, error) {
	switch LabelMode(s) {
	case "", LabelsFixed:
		return LabelsFixed, nil
	case LabelsActual:
		return LabelsActual, nil
	}
	return "", fmt.Errorf("unknown forecast label mode %q", s)
}

// Rand is the subset of *rand.Rand the mock needs.
type Rand interface {
	IntN(n int) int
}

// Mock generates random but range-bounded weather for any city name.
type Mock struct {
	delay  time.Duration
	labels LabelMode
	now    func() time.Time

	mu  sync.Mutex // guards rng
	rng Rand
}

type MockOption func(*Mock)

func WithDelay(d time.Duration) MockOption {
	return func(m *Mock) { m.delay = d }
}

func WithLabels(mode LabelMode) MockOption {
	return func(m *Mock) {
		if mode != "" {
			m.labels = mode
		}
	}
}

func WithClock(now func() time.Time) MockOption {
	return func(m *Mock) { m.now = now }
}

func WithRand(r Rand) MockOption {
	return func(m *Mock) { m.rng = r }
}

// WithSeed makes the generated sequence reproducible.
func WithSeed(seed uint64) MockOption {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		delay:  DefaultMockDelay,
		labels: LabelsFixed,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		seed := uint64(m.now().UnixNano())
		m.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return m
}

func (m *Mock) Name() string {
	return "Mock"
}

// Fetch waits out the simulated latency and then generates a response.
// Only input validation and context cancellation can make it fail.
func (m *Mock) Fetch(ctx context.Context, city string) (*models.WeatherResponse, error) {
	if err := Validate(city); err != nil {
		return nil, err
	}

	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return m.Generate(city, m.now()), nil
}

// Generate builds a response for city as seen at now, without any delay.
func (m *Mock) Generate(city string, now time.Time) *models.WeatherResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp := &models.WeatherResponse{
		Current: models.WeatherReading{
			Location:           city,
			TemperatureCelsius: float64(m.between(15, 34)),
			Condition:          m.pick(mockConditions),
			HumidityPercent:    m.between(40, 79),
			WindSpeedKmh:       float64(m.between(5, 24)),
			Icon:               m.pick(mockIcons),
		},
		Forecast: make([]models.ForecastDay, 0, forecastDays),
		Hourly:   make([]models.HourlyPoint, 0, hourlyPoints),
	}

	for i := 0; i < forecastDays; i++ {
		date := now.AddDate(0, 0, i+1)
		label := fixedWeekdays[i]
		if m.labels == LabelsActual {
			label = date.Weekday().String()
		}
		resp.Forecast = append(resp.Forecast, models.ForecastDay{
			Label:       label,
			Date:        date.Format(dateLayout),
			HighCelsius: float64(m.between(20, 34)),
			LowCelsius:  float64(m.between(10, 19)),
			Condition:   m.pick(mockConditions),
			Icon:        m.pick(mockIcons),
		})
	}

	start := now.Hour()
	for i := 0; i < hourlyPoints; i++ {
		resp.Hourly = append(resp.Hourly, models.HourlyPoint{
			Time:               fmt.Sprintf("%02d:00", (start+i)%24),
			TemperatureCelsius: float64(m.between(10, 29)),
			Condition:          m.pick(mockConditions),
			Icon:               m.pick(mockIcons),
		})
	}

	return resp
}

// between returns a uniform integer in [lo, hi].
func (m *Mock) between(lo, hi int) int {
	return lo + m.rng.IntN(hi-lo+1)
}

func (m *Mock) pick(set []string) string {
	return set[m.rng.IntN(len(set))]
}
