package models

import (
	"database/sql"
	"time"
)

// TemperatureUnit is the user's display preference. Readings are always
// produced in Celsius; the unit only affects presentation.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// WeatherReading is a single point-in-time observation for a location.
type WeatherReading struct {
	Location           string  `json:"location"`
	TemperatureCelsius float64 `json:"temperatureCelsius"`
	Condition          string  `json:"condition"`
	HumidityPercent    int     `json:"humidityPercent"`
	WindSpeedKmh       float64 `json:"windSpeedKmh"`
	Icon               string  `json:"icon"`
}

type ForecastDay struct {
	Label       string  `json:"label"` // weekday name
	Date        string  `json:"date"`
	HighCelsius float64 `json:"highCelsius"`
	LowCelsius  float64 `json:"lowCelsius"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

type HourlyPoint struct {
	Time               string  `json:"time"` // "HH:MM", 24h
	TemperatureCelsius float64 `json:"temperatureCelsius"`
	Condition          string  `json:"condition"`
	Icon               string  `json:"icon"`
}

// WeatherResponse is the all-or-nothing result of one search. Forecast is
// chronological (day 1..5 ahead); Hourly is optional and starts at the
// current hour.
type WeatherResponse struct {
	Current  WeatherReading `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Hourly   []HourlyPoint  `json:"hourly,omitempty"`
}

type Profile struct {
	ID              string
	Email           sql.NullString
	FullName        sql.NullString
	DefaultCity     sql.NullString
	TemperatureUnit TemperatureUnit
	Theme           Theme
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileUpdate carries a partial profile change. Nil fields are left as-is.
type ProfileUpdate struct {
	FullName        *string
	DefaultCity     *string
	TemperatureUnit *TemperatureUnit
	Theme           *Theme
}

type FavoriteCity struct {
	ID        string
	UserID    string
	CityName  string
	Country   sql.NullString
	CreatedAt time.Time
}
