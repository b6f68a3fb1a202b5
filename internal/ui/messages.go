package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/weatherlookup/internal/models"
	"github.com/lox/weatherlookup/internal/search"
	"github.com/lox/weatherlookup/internal/weather"
)

// searchMsg asks the model to start a search, e.g. for the initial city.
type searchMsg struct {
	city string
}

// weatherFetchedMsg carries the result of one search. token identifies the
// search so that results of superseded searches can be dropped.
type weatherFetchedMsg struct {
	token     search.Token
	city      string
	weather   *models.WeatherResponse
	err       error
	fetchedAt time.Time
}

func fetchWeather(ctx context.Context, source weather.Source, city string, token search.Token) tea.Cmd {
	return func() tea.Msg {
		resp, err := source.Fetch(ctx, city)
		return weatherFetchedMsg{
			token:     token,
			city:      city,
			weather:   resp,
			err:       err,
			fetchedAt: time.Now(),
		}
	}
}
