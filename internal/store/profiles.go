package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lox/weatherlookup/internal/htmlutil"
	"github.com/lox/weatherlookup/internal/metrics"
	"github.com/lox/weatherlookup/internal/models"
)

// CreateProfile registers a new user with default preferences.
func (s *Store) CreateProfile(email, fullName string) (*models.Profile, error) {
	now := s.now().UTC()
	p := &models.Profile{
		ID:              uuid.NewString(),
		Email:           nullString(strings.ToLower(strings.TrimSpace(email))),
		FullName:        nullString(htmlutil.CleanField(fullName)),
		TemperatureUnit: models.Celsius,
		Theme:           models.ThemeSystem,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := s.exec(`
		INSERT INTO profiles (id, email, full_name, default_city, temperature_unit, theme, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Email, p.FullName, p.DefaultCity, p.TemperatureUnit, p.Theme, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email %q already registered: %w", p.Email.String, ErrDuplicateProfile)
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("create").Inc()
	return p, nil
}

// GetProfile returns nil, nil when no profile exists for id.
func (s *Store) GetProfile(id string) (*models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT id, email, full_name, default_city, temperature_unit, theme, created_at, updated_at
		FROM profiles
		WHERE id = ?
	`, id)

	var p models.Profile
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.DefaultCity, &p.TemperatureUnit, &p.Theme, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies the non-nil fields of u and bumps updated_at.
func (s *Store) UpdateProfile(id string, u models.ProfileUpdate) (*models.Profile, error) {
	sets := []string{"updated_at = ?"}
	args := []any{s.now().UTC()}

	if u.FullName != nil {
		sets = append(sets, "full_name = ?")
		args = append(args, nullString(htmlutil.CleanField(*u.FullName)))
	}
	if u.DefaultCity != nil {
		sets = append(sets, "default_city = ?")
		args = append(args, nullString(htmlutil.CleanField(*u.DefaultCity)))
	}
	if u.TemperatureUnit != nil {
		sets = append(sets, "temperature_unit = ?")
		args = append(args, *u.TemperatureUnit)
	}
	if u.Theme != nil {
		sets = append(sets, "theme = ?")
		args = append(args, *u.Theme)
	}
	args = append(args, id)

	res, err := s.exec("UPDATE profiles SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("update").Inc()
	return s.GetProfile(id)
}
