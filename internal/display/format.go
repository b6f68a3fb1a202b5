// Package display turns Celsius readings into the numbers and labels shown
// on the current, daily and hourly cards.
package display

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lox/weatherlookup/internal/models"
)

type Temperature struct {
	Value int    `json:"value"`
	Label string `json:"unit"`
}

func (t Temperature) String() string {
	return strconv.Itoa(t.Value) + t.Label
}

// Format converts a Celsius value for display. Rounding is half away from
// zero, so -1.5°C shows as -2°C.
func Format(celsius float64, unit models.TemperatureUnit) Temperature {
	if unit == models.Fahrenheit {
		return Temperature{Value: int(math.Round(celsius*9/5 + 32)), Label: "°F"}
	}
	return Temperature{Value: int(math.Round(celsius)), Label: "°C"}
}

// ParseUnit accepts "celsius" or "fahrenheit"; empty means celsius.
func ParseUnit(s string) (models.TemperatureUnit, error) {
	switch models.TemperatureUnit(s) {
	case "", models.Celsius:
		return models.Celsius, nil
	case models.Fahrenheit:
		return models.Fahrenheit, nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", s)
}

func ParseTheme(s string) (models.Theme, error) {
	switch models.Theme(s) {
	case "", models.ThemeSystem:
		return models.ThemeSystem, nil
	case models.ThemeLight, models.ThemeDark:
		return models.Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}
