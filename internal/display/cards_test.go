package display

import (
	"fmt"
	"testing"

	"github.com/lox/weatherlookup/internal/models"
)

func sampleResponse() *models.WeatherResponse {
	resp := &models.WeatherResponse{
		Current: models.WeatherReading{
			Location:           "Paris",
			TemperatureCelsius: 20,
			Condition:          "Partly Cloudy",
			HumidityPercent:    55,
			WindSpeedKmh:       12.6,
			Icon:               "⛅",
		},
	}
	for i := 0; i < 5; i++ {
		resp.Forecast = append(resp.Forecast, models.ForecastDay{
			Label:       fmt.Sprintf("Day %d", i+1),
			Date:        fmt.Sprintf("10/%d/2026", 16+i),
			HighCelsius: 30,
			LowCelsius:  10,
			Condition:   "Sunny",
			Icon:        "☀️",
		})
	}
	for i := 0; i < 24; i++ {
		resp.Hourly = append(resp.Hourly, models.HourlyPoint{
			Time:               fmt.Sprintf("%02d:00", i),
			TemperatureCelsius: -1.5,
			Condition:          "Rainy",
			Icon:               "🌧️",
		})
	}
	return resp
}

func TestBuild_Fahrenheit(t *testing.T) {
	cards := Build(sampleResponse(), models.Fahrenheit)

	if cards.Current.Temperature.String() != "68°F" {
		t.Errorf("current = %s, want 68°F", cards.Current.Temperature)
	}
	if cards.Current.Humidity != "55%" {
		t.Errorf("humidity = %q", cards.Current.Humidity)
	}
	if cards.Current.Wind != "13 km/h" {
		t.Errorf("wind = %q", cards.Current.Wind)
	}
	if cards.Current.Theme != ThemeCloud {
		t.Errorf("theme = %q, want cloud", cards.Current.Theme)
	}

	if len(cards.Daily) != 5 {
		t.Fatalf("len(Daily) = %d, want 5", len(cards.Daily))
	}
	if cards.Daily[0].High.String() != "86°F" || cards.Daily[0].Low.String() != "50°F" {
		t.Errorf("daily[0] = %s/%s", cards.Daily[0].High, cards.Daily[0].Low)
	}

	if len(cards.Hourly) != HourlyCardSize {
		t.Fatalf("len(Hourly) = %d, want %d", len(cards.Hourly), HourlyCardSize)
	}
	// -1.5°C = 29.3°F
	if cards.Hourly[0].Temperature.String() != "29°F" {
		t.Errorf("hourly[0] = %s, want 29°F", cards.Hourly[0].Temperature)
	}
	if cards.Hourly[11].Time != "11:00" {
		t.Errorf("hourly[11].Time = %q", cards.Hourly[11].Time)
	}
}

func TestBuild_Celsius(t *testing.T) {
	cards := Build(sampleResponse(), models.Celsius)
	if cards.Hourly[0].Temperature.String() != "-2°C" {
		t.Errorf("hourly[0] = %s, want -2°C", cards.Hourly[0].Temperature)
	}
	if cards.Unit != models.Celsius {
		t.Errorf("Unit = %q", cards.Unit)
	}
}

func TestHourly_Absent(t *testing.T) {
	if got := Hourly(nil, models.Celsius); got != nil {
		t.Errorf("Hourly(nil) = %v, want nil", got)
	}
}

func TestConditionTheme(t *testing.T) {
	tests := []struct {
		condition string
		want      Theme
	}{
		{"Rainy", ThemeRain},
		{"light drizzle", ThemeRain},
		{"Cloudy", ThemeCloud},
		{"Partly Cloudy", ThemeCloud},
		{"Snow", ThemeSnow},
		{"Clear", ThemeSun},
		{"Sunny", ThemeSun},
		{"", ThemeSun},
	}
	for _, tt := range tests {
		if got := ConditionTheme(tt.condition); got != tt.want {
			t.Errorf("ConditionTheme(%q) = %q, want %q", tt.condition, got, tt.want)
		}
	}
}
