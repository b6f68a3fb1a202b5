package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/models"
	"github.com/lox/weatherlookup/internal/store"
)

func (s *Server) handleAPIWeather(w http.ResponseWriter, r *http.Request) {
	profile, err := s.currentProfile(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	unit, err := resolveUnit(r, profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	city := s.resolveCity(r, profile)
	resp, err := s.source.Fetch(r.Context(), city)
	if err != nil {
		writeError(w, weatherStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, WeatherView{
		Source:    s.source.Name(),
		FetchedAt: s.now().UTC(),
		Cards:     display.Build(resp, unit),
		Raw:       resp,
	})
}

func (s *Server) handleAPIProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.apiProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newProfileView(profile))
}

func (s *Server) handleAPICreateProfile(w http.ResponseWriter, r *http.Request) {
	var req newProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := s.store.CreateProfile(req.Email, req.FullName)
	if errors.Is(err, store.ErrDuplicateProfile) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		log.Printf("server: create profile: %v", err)
		writeError(w, http.StatusInternalServerError, "could not create profile")
		return
	}
	setUserCookie(w, p.ID)
	writeJSON(w, http.StatusCreated, newProfileView(p))
}

func (s *Server) handleAPIUpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.apiProfile(w, r)
	if !ok {
		return
	}

	var patch profilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	update, err := buildProfileUpdate(patch.FullName, patch.DefaultCity, patch.TemperatureUnit, patch.Theme)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.store.UpdateProfile(profile.ID, update)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("server: update profile %s: %v", profile.ID, err)
		writeError(w, http.StatusInternalServerError, "could not update profile")
		return
	}
	writeJSON(w, http.StatusOK, newProfileView(updated))
}

func (s *Server) handleAPIFavorites(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.apiProfile(w, r)
	if !ok {
		return
	}
	favs, err := s.store.ListFavorites(profile.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newFavoriteViews(favs))
}

func (s *Server) handleAPIAddFavorite(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.apiProfile(w, r)
	if !ok {
		return
	}

	var req newFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fav, err := s.store.AddFavorite(profile.ID, req.CityName, req.Country)
	switch {
	case errors.Is(err, store.ErrDuplicateFavorite):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newFavoriteViews([]models.FavoriteCity{*fav})[0])
}

func (s *Server) handleAPIDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.apiProfile(w, r)
	if !ok {
		return
	}
	err := s.store.RemoveFavorite(profile.ID, r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// apiProfile resolves the caller's profile, answering 401 itself when the
// caller is anonymous or unknown.
func (s *Server) apiProfile(w http.ResponseWriter, r *http.Request) (*models.Profile, bool) {
	profile, err := s.currentProfile(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if profile == nil {
		writeError(w, http.StatusUnauthorized, "unknown or missing user")
		return nil, false
	}
	return profile, true
}

// buildProfileUpdate validates raw field values from a form or JSON body.
// Nil arguments mean the field was not supplied.
func buildProfileUpdate(fullName, defaultCity, unit, theme *string) (models.ProfileUpdate, error) {
	u := models.ProfileUpdate{FullName: fullName, DefaultCity: defaultCity}
	if unit != nil {
		parsed, err := display.ParseUnit(*unit)
		if err != nil {
			return u, err
		}
		u.TemperatureUnit = &parsed
	}
	if theme != nil {
		parsed, err := display.ParseTheme(*theme)
		if err != nil {
			return u, err
		}
		u.Theme = &parsed
	}
	return u, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
