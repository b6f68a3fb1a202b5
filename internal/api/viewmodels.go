package api

import (
	"time"

	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/models"
)

// IndexData is everything the index page renders. Cards is nil when the
// search failed; Error then carries the banner text.
type IndexData struct {
	Profile   *models.Profile
	City      string
	Unit      models.TemperatureUnit
	Theme     models.Theme
	Cards     *display.Cards
	Error     string
	Notice    string
	Favorites []models.FavoriteCity
	FetchedAt time.Time
	Source    string
}

// Welcome is the page heading: a greeting for signed-in users with a name,
// the app title otherwise.
func (d IndexData) Welcome() string {
	if d.Profile != nil && d.Profile.FullName.Valid {
		if name := firstName(d.Profile.FullName.String); name != "" {
			return "Welcome back, " + name + "!"
		}
	}
	return "Weather App"
}

type ProfileView struct {
	ID              string                 `json:"id"`
	Email           string                 `json:"email,omitempty"`
	FullName        string                 `json:"fullName,omitempty"`
	DefaultCity     string                 `json:"defaultCity,omitempty"`
	TemperatureUnit models.TemperatureUnit `json:"temperatureUnit"`
	Theme           models.Theme           `json:"theme"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func newProfileView(p *models.Profile) ProfileView {
	return ProfileView{
		ID:              p.ID,
		Email:           p.Email.String,
		FullName:        p.FullName.String,
		DefaultCity:     p.DefaultCity.String,
		TemperatureUnit: p.TemperatureUnit,
		Theme:           p.Theme,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type FavoriteView struct {
	ID        string    `json:"id"`
	CityName  string    `json:"cityName"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newFavoriteViews(favs []models.FavoriteCity) []FavoriteView {
	views := make([]FavoriteView, 0, len(favs))
	for _, f := range favs {
		views = append(views, FavoriteView{
			ID:        f.ID,
			CityName:  f.CityName,
			Country:   f.Country.String,
			CreatedAt: f.CreatedAt,
		})
	}
	return views
}

// WeatherView is the /api/weather payload: display-ready cards plus the
// source's raw Celsius response.
type WeatherView struct {
	Source    string                  `json:"source"`
	FetchedAt time.Time               `json:"fetchedAt"`
	Cards     display.Cards           `json:"cards"`
	Raw       *models.WeatherResponse `json:"raw"`
}

type HealthStatus struct {
	Status        string `json:"status"`
	Source        string `json:"source"`
	SchemaVersion int    `json:"schemaVersion"`
	Error         string `json:"error,omitempty"`
}

// profilePatch is the PATCH /api/profile body. Absent fields are unchanged.
type profilePatch struct {
	FullName        *string `json:"fullName"`
	DefaultCity     *string `json:"defaultCity"`
	TemperatureUnit *string `json:"temperatureUnit"`
	Theme           *string `json:"theme"`
}

type newProfileRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type newFavoriteRequest struct {
	CityName string `json:"cityName"`
	Country  string `json:"country"`
}
