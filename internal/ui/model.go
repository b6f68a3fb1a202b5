// Package ui is the terminal front end: a search box, a spinner while a
// search is in flight, and the current, 5-day and hourly cards.
package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/weatherlookup/internal/models"
	"github.com/lox/weatherlookup/internal/search"
	"github.com/lox/weatherlookup/internal/weather"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch  AppState = iota // Waiting for a city
	StateLoading                 // A search is in flight
	StateDisplay                 // Showing a result
	StateError                   // Last search failed
)

type Model struct {
	state  AppState
	width  int
	height int
	err    error

	searchInput textinput.Model
	spinner     spinner.Model

	source  weather.Source
	tracker *search.Tracker
	cancel  context.CancelFunc

	initialCity string
	city        string
	unit        models.TemperatureUnit
	weather     *models.WeatherResponse
	fetchedAt   time.Time
}

// NewModel creates the model. A non-empty initialCity is searched as soon
// as the program starts.
func NewModel(source weather.Source, unit models.TemperatureUnit, initialCity string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a city..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	if unit == "" {
		unit = models.Celsius
	}

	return Model{
		state:       StateSearch,
		searchInput: ti,
		spinner:     s,
		source:      source,
		tracker:     &search.Tracker{},
		initialCity: initialCity,
		unit:        unit,
	}
}

func (m Model) Init() tea.Cmd {
	if m.initialCity == "" {
		return textinput.Blink
	}
	city := m.initialCity
	return tea.Batch(textinput.Blink, func() tea.Msg { return searchMsg{city: city} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchMsg:
		return m.startSearch(msg.city)

	case weatherFetchedMsg:
		if !m.tracker.IsLatest(msg.token) {
			// a newer search has started since
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.weather = msg.weather
		m.fetchedAt = msg.fetchedAt
		m.err = nil
		m.state = StateDisplay
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}

	if m.state == StateDisplay {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "u":
			m.unit = toggleUnit(m.unit)
			return m, nil
		case "s", "/":
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		return m.startSearch(m.searchInput.Value())
	}
	if msg.Type == tea.KeyEsc && m.weather != nil && m.state != StateLoading {
		m.state = StateDisplay
		m.err = nil
		m.searchInput.Blur()
		return m, nil
	}

	// typing after a failure goes back to search
	if m.state == StateError {
		m.state = StateSearch
		m.err = nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// startSearch supersedes any search in flight and fetches city.
func (m Model) startSearch(city string) (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	token := m.tracker.Begin()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.city = city
	m.err = nil
	m.state = StateLoading
	m.searchInput.Focus()
	return m, tea.Batch(m.spinner.Tick, fetchWeather(ctx, m.source, city, token))
}

func toggleUnit(u models.TemperatureUnit) models.TemperatureUnit {
	if u == models.Fahrenheit {
		return models.Celsius
	}
	return models.Fahrenheit
}

// errorText is the message shown for a failed search.
func errorText(err error) string {
	switch {
	case errors.Is(err, weather.ErrInvalidInput):
		return "Please enter a city name."
	case errors.Is(err, weather.ErrLocationNotFound):
		return "We couldn't find that city. Check the spelling and try again."
	default:
		return fmt.Sprintf("Failed to fetch weather data. Please try again. (%v)", err)
	}
}
