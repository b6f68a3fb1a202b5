package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/models"
	"github.com/lox/weatherlookup/internal/store"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	profile, err := s.currentProfile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := IndexData{
		Profile: profile,
		Theme:   models.ThemeSystem,
		Source:  s.source.Name(),
	}
	if profile != nil {
		data.Theme = profile.Theme
		favs, err := s.store.ListFavorites(profile.ID)
		if err != nil {
			log.Printf("server: list favorites for %s: %v", profile.ID, err)
		}
		data.Favorites = favs
	}

	unit, err := resolveUnit(r, profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data.Unit = unit
	data.City = s.resolveCity(r, profile)

	status := http.StatusOK
	resp, err := s.source.Fetch(r.Context(), data.City)
	if err != nil {
		// all or nothing: a failed search shows the banner and no cards
		data.Error = weatherMessage(err)
		status = weatherStatus(err)
	} else {
		cards := display.Build(resp, unit)
		data.Cards = &cards
		data.FetchedAt = s.now()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := s.store.CreateProfile(r.PostForm.Get("email"), r.PostForm.Get("full_name"))
	if errors.Is(err, store.ErrDuplicateProfile) {
		http.Error(w, "An account with that email already exists", http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("server: create account: %v", err)
		http.Error(w, "Could not create account", http.StatusInternalServerError)
		return
	}
	log.Printf("server: created profile %s", p.ID)
	setUserCookie(w, p.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	clearUserCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.pageProfile(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update, err := buildProfileUpdate(
		formValue(r, "full_name"),
		formValue(r, "default_city"),
		formValue(r, "temperature_unit"),
		formValue(r, "theme"),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := s.store.UpdateProfile(profile.ID, update); err != nil {
		log.Printf("server: update profile %s: %v", profile.ID, err)
		http.Error(w, "Could not save settings", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.pageProfile(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	city := r.PostForm.Get("city_name")
	_, err := s.store.AddFavorite(profile.ID, city, r.PostForm.Get("country"))
	switch {
	case errors.Is(err, store.ErrDuplicateFavorite):
		http.Error(w, "City is already in your favorites", http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/?city="+url.QueryEscape(city), http.StatusSeeOther)
}

func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.pageProfile(w, r)
	if !ok {
		return
	}
	err := s.store.RemoveFavorite(profile.ID, r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("server: remove favorite: %v", err)
		http.Error(w, "Could not remove favorite", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	version, err := s.store.MigrationVersion()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(HealthStatus{Status: "error", Source: s.source.Name(), Error: err.Error()})
		return
	}

	health := HealthStatus{
		Status:        "ok",
		Source:        s.source.Name(),
		SchemaVersion: version,
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.Printf("health: write response: %v", err)
	}
}

// pageProfile loads the signed-in profile for a form post, answering 401
// itself when there is none.
func (s *Server) pageProfile(w http.ResponseWriter, r *http.Request) (*models.Profile, bool) {
	profile, err := s.currentProfile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if profile == nil {
		http.Error(w, "Sign in first", http.StatusUnauthorized)
		return nil, false
	}
	return profile, true
}

// formValue returns nil when the field was not submitted at all, so that
// partial forms leave other settings untouched.
func formValue(r *http.Request, key string) *string {
	if !r.PostForm.Has(key) {
		return nil
	}
	v := r.PostForm.Get(key)
	return &v
}
