package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/lox/weatherlookup/internal/models"
)

// HourlyCardSize is how many hourly points the hourly card shows.
const HourlyCardSize = 12

type CurrentCard struct {
	Location    string      `json:"location"`
	Temperature Temperature `json:"temperature"`
	Condition   string      `json:"condition"`
	Humidity    string      `json:"humidity"`
	Wind        string      `json:"wind"`
	Icon        string      `json:"icon"`
	Theme       Theme       `json:"theme"`
}

type DayCard struct {
	Label     string      `json:"label"`
	Date      string      `json:"date"`
	High      Temperature `json:"high"`
	Low       Temperature `json:"low"`
	Condition string      `json:"condition"`
	Icon      string      `json:"icon"`
}

type HourCard struct {
	Time        string      `json:"time"`
	Temperature Temperature `json:"temperature"`
	Condition   string      `json:"condition"`
	Icon        string      `json:"icon"`
}

// Cards is everything a page needs to render one search result.
type Cards struct {
	Unit    models.TemperatureUnit `json:"unit"`
	Current CurrentCard            `json:"current"`
	Daily   []DayCard              `json:"daily"`
	Hourly  []HourCard             `json:"hourly,omitempty"`
}

func Build(resp *models.WeatherResponse, unit models.TemperatureUnit) Cards {
	return Cards{
		Unit:    unit,
		Current: Current(resp.Current, unit),
		Daily:   Daily(resp.Forecast, unit),
		Hourly:  Hourly(resp.Hourly, unit),
	}
}

func Current(r models.WeatherReading, unit models.TemperatureUnit) CurrentCard {
	return CurrentCard{
		Location:    r.Location,
		Temperature: Format(r.TemperatureCelsius, unit),
		Condition:   r.Condition,
		Humidity:    fmt.Sprintf("%d%%", r.HumidityPercent),
		Wind:        fmt.Sprintf("%d km/h", int(math.Round(r.WindSpeedKmh))),
		Icon:        r.Icon,
		Theme:       ConditionTheme(r.Condition),
	}
}

func Daily(days []models.ForecastDay, unit models.TemperatureUnit) []DayCard {
	cards := make([]DayCard, 0, len(days))
	for _, d := range days {
		cards = append(cards, DayCard{
			Label:     d.Label,
			Date:      d.Date,
			High:      Format(d.HighCelsius, unit),
			Low:       Format(d.LowCelsius, unit),
			Condition: d.Condition,
			Icon:      d.Icon,
		})
	}
	return cards
}

// Hourly formats at most HourlyCardSize points; nil in, nil out.
func Hourly(points []models.HourlyPoint, unit models.TemperatureUnit) []HourCard {
	if points == nil {
		return nil
	}
	if len(points) > HourlyCardSize {
		points = points[:HourlyCardSize]
	}
	cards := make([]HourCard, 0, len(points))
	for _, p := range points {
		cards = append(cards, HourCard{
			Time:        p.Time,
			Temperature: Format(p.TemperatureCelsius, unit),
			Condition:   p.Condition,
			Icon:        p.Icon,
		})
	}
	return cards
}

// Theme is the visual category for a free-text condition.
type Theme string

const (
	ThemeRain  Theme = "rain"
	ThemeCloud Theme = "cloud"
	ThemeSnow  Theme = "snow"
	ThemeSun   Theme = "sun"
)

func ConditionTheme(condition string) Theme {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain"), strings.Contains(c, "drizzle"):
		return ThemeRain
	case strings.Contains(c, "cloud"):
		return ThemeCloud
	case strings.Contains(c, "snow"):
		return ThemeSnow
	default:
		return ThemeSun
	}
}
