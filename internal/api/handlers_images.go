package api

import (
	"log"
	"net/http"

	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/imagegen"
)

// handleCardImage renders the current-conditions card for a city as a PNG,
// for sharing.
func (s *Server) handleCardImage(w http.ResponseWriter, r *http.Request) {
	profile, err := s.currentProfile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	unit, err := resolveUnit(r, profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.source.Fetch(r.Context(), s.resolveCity(r, profile))
	if err != nil {
		http.Error(w, weatherMessage(err), weatherStatus(err))
		return
	}

	data, err := imagegen.RenderCard(display.Current(resp.Current, unit))
	if err != nil {
		log.Printf("card-image: %v", err)
		http.Error(w, "Could not render card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
