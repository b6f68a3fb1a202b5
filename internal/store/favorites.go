package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lox/weatherlookup/internal/htmlutil"
	"github.com/lox/weatherlookup/internal/metrics"
	"github.com/lox/weatherlookup/internal/models"
)

// ListFavorites returns the user's favorite cities, newest first.
func (s *Store) ListFavorites(userID string) ([]models.FavoriteCity, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, city_name, country, created_at
		FROM favorite_cities
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []models.FavoriteCity
	for rows.Next() {
		var f models.FavoriteCity
		var country string
		if err := rows.Scan(&f.ID, &f.UserID, &f.CityName, &country, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Country = nullString(country)
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// AddFavorite saves a city for the user. Adding the same city and country
// twice fails with ErrDuplicateFavorite.
func (s *Store) AddFavorite(userID, cityName, country string) (*models.FavoriteCity, error) {
	f := &models.FavoriteCity{
		ID:        uuid.NewString(),
		UserID:    userID,
		CityName:  htmlutil.CleanField(cityName),
		Country:   nullString(htmlutil.CleanField(country)),
		CreatedAt: s.now().UTC(),
	}
	if f.CityName == "" {
		return nil, fmt.Errorf("favorite city name is empty")
	}

	_, err := s.exec(`
		INSERT INTO favorite_cities (id, user_id, city_name, country, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, f.ID, f.UserID, f.CityName, f.Country.String, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			metrics.FavoriteChangesTotal.WithLabelValues("add", "duplicate").Inc()
			return nil, fmt.Errorf("%s: %w", f.CityName, ErrDuplicateFavorite)
		}
		metrics.FavoriteChangesTotal.WithLabelValues("add", "error").Inc()
		return nil, fmt.Errorf("insert favorite: %w", err)
	}

	metrics.FavoriteChangesTotal.WithLabelValues("add", "ok").Inc()
	return f, nil
}

// RemoveFavorite deletes one of the user's favorites. Rows belonging to
// other users are never touched.
func (s *Store) RemoveFavorite(userID, id string) error {
	res, err := s.exec(`DELETE FROM favorite_cities WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		metrics.FavoriteChangesTotal.WithLabelValues("remove", "error").Inc()
		return fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		metrics.FavoriteChangesTotal.WithLabelValues("remove", "not_found").Inc()
		return fmt.Errorf("favorite %s: %w", id, ErrNotFound)
	}
	metrics.FavoriteChangesTotal.WithLabelValues("remove", "ok").Inc()
	return nil
}
