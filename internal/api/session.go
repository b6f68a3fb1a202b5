package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/models"
	"github.com/lox/weatherlookup/internal/weather"
)

const (
	userCookie   = "weatherlookup_user"
	userIDHeader = "X-User-ID"
)

// userID identifies the caller by header first, then cookie.
func userID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(userCookie); err == nil {
		return c.Value
	}
	return ""
}

// currentProfile returns nil when the caller is anonymous or unknown.
func (s *Server) currentProfile(r *http.Request) (*models.Profile, error) {
	id := userID(r)
	if id == "" {
		return nil, nil
	}
	return s.store.GetProfile(id)
}

func setUserCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     userCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
	})
}

func clearUserCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     userCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// resolveUnit picks the display unit: explicit query value, then profile,
// then Celsius.
func resolveUnit(r *http.Request, p *models.Profile) (models.TemperatureUnit, error) {
	if raw := r.URL.Query().Get("unit"); raw != "" {
		return display.ParseUnit(raw)
	}
	if p != nil && p.TemperatureUnit != "" {
		return p.TemperatureUnit, nil
	}
	return models.Celsius, nil
}

// resolveCity picks the city to search: explicit query value, then the
// profile's default, then the server default.
func (s *Server) resolveCity(r *http.Request, p *models.Profile) string {
	q := r.URL.Query()
	if q.Has("city") {
		return q.Get("city")
	}
	if p != nil && p.DefaultCity.Valid {
		return p.DefaultCity.String
	}
	return s.defaultCity
}

func weatherStatus(err error) int {
	switch {
	case errors.Is(err, weather.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// weatherMessage is the banner text shown for a failed search.
func weatherMessage(err error) string {
	switch {
	case errors.Is(err, weather.ErrInvalidInput):
		return "Please enter a city name."
	case errors.Is(err, weather.ErrLocationNotFound):
		return "We couldn't find that city. Check the spelling and try again."
	default:
		return "Failed to fetch weather data. Please try again."
	}
}
