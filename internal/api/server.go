package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/weatherlookup/internal/store"
	"github.com/lox/weatherlookup/internal/weather"
)

// DefaultCity is searched when neither the request nor the profile names one.
const DefaultCity = "New York"

type Server struct {
	store       *store.Store
	source      weather.Source
	port        string
	defaultCity string
	tmpl        *template.Template
	now         func() time.Time
}

func NewServer(store *store.Store, source weather.Source, port, defaultCity string) *Server {
	if defaultCity == "" {
		defaultCity = DefaultCity
	}
	return &Server{
		store:       store,
		source:      source,
		port:        port,
		defaultCity: defaultCity,
		tmpl:        newTemplates(),
		now:         time.Now,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /account", s.handleCreateAccount)
	mux.HandleFunc("POST /account/signout", s.handleSignOut)
	mux.HandleFunc("POST /settings", s.handleSettings)
	mux.HandleFunc("POST /favorites", s.handleAddFavorite)
	mux.HandleFunc("POST /favorites/{id}/delete", s.handleDeleteFavorite)
	mux.HandleFunc("GET /card.png", s.handleCardImage)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/weather", s.handleAPIWeather)
	mux.HandleFunc("GET /api/profile", s.handleAPIProfile)
	mux.HandleFunc("POST /api/profile", s.handleAPICreateProfile)
	mux.HandleFunc("PATCH /api/profile", s.handleAPIUpdateProfile)
	mux.HandleFunc("GET /api/favorites", s.handleAPIFavorites)
	mux.HandleFunc("POST /api/favorites", s.handleAPIAddFavorite)
	mux.HandleFunc("DELETE /api/favorites/{id}", s.handleAPIDeleteFavorite)
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
