package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lox/weatherlookup/internal/display"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		titleStyle.Render("Weather App"),
		"",
		m.searchInput.View(),
		"",
	}

	switch m.state {
	case StateLoading:
		sections = append(sections, fmt.Sprintf("%s Fetching weather for %s...", m.spinner.View(), m.city))
	case StateError:
		sections = append(sections, errorStyle.Render("Error: "+errorText(m.err)))
	case StateDisplay:
		sections = append(sections, m.viewCards())
	case StateSearch:
		if m.weather != nil {
			sections = append(sections, m.viewCards())
		} else {
			sections = append(sections, mutedStyle.Render("Search for a city to see its weather information"))
		}
	}

	sections = append(sections, m.viewHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCards() string {
	out := RenderCards(display.Build(m.weather, m.unit))
	if !m.fetchedAt.IsZero() {
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			mutedStyle.Render(fmt.Sprintf("Data from %s, updated %s", m.source.Name(), humanize.Time(m.fetchedAt))))
	}
	return out
}

// RenderCards lays out the current and 5-day cards side by side with the
// hourly strip underneath.
func RenderCards(cards display.Cards) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCurrent(cards.Current),
		renderForecast(cards.Daily),
	)
	if len(cards.Hourly) == 0 {
		return top
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, renderHourly(cards.Hourly))
}

func (m Model) viewHelp() string {
	if m.state == StateDisplay {
		return helpStyle.Render("u: toggle °C/°F • s: search • q: quit")
	}
	if m.weather != nil {
		return helpStyle.Render("enter: search • esc: back • ctrl+c: quit")
	}
	return helpStyle.Render("enter: search • ctrl+c: quit")
}

func renderCurrent(c display.CurrentCard) string {
	lines := []string{
		boxHeaderStyle.Render(c.Location),
		fmt.Sprintf("%s  %s", tempStyle.Render(c.Temperature.String()), c.Icon),
		c.Condition,
		"",
		fmt.Sprintf("%s %s   %s %s", labelStyle.Render("Humidity"), c.Humidity, labelStyle.Render("Wind"), c.Wind),
	}
	style := boxStyle
	if color, ok := themeBorder[c.Theme]; ok {
		style = style.BorderForeground(color)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderForecast(days []display.DayCard) string {
	lines := []string{boxHeaderStyle.Render("5-Day Forecast")}
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("%-9s %-10s %s %-13s %s / %s",
			d.Label, mutedStyle.Render(d.Date), d.Icon, d.Condition, tempStyle.Render(d.High.String()), d.Low.String()))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderHourly(hours []display.HourCard) string {
	cols := make([]string, 0, len(hours))
	for _, h := range hours {
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center,
			mutedStyle.Render(h.Time),
			h.Icon,
			h.Temperature.String(),
		))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(cols, "  ")...)
	return boxStyle.Render(boxHeaderStyle.Render("Hourly Forecast") + "\n" + row)
}

func intersperse(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
