package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lox/weatherlookup/internal/httputil"
	"github.com/lox/weatherlookup/internal/models"
)

const openWeatherMapURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMap is a Source backed by the OpenWeatherMap 5 day / 3 hour
// forecast endpoint. The first entry is used as current conditions and the
// next five as the forecast series. No hourly series is produced.
type OpenWeatherMap struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherMap(apiKey string) *OpenWeatherMap {
	return &OpenWeatherMap{
		apiKey:     apiKey,
		baseURL:    openWeatherMapURL,
		httpClient: httputil.NewClient(),
	}
}

// WithBaseURL points the source at a different API root.
func (p *OpenWeatherMap) WithBaseURL(baseURL string) *OpenWeatherMap {
	p.baseURL = baseURL
	return p
}

func (p *OpenWeatherMap) Name() string {
	return "OpenWeatherMap"
}

type owmCondition struct {
	Main string `json:"main"`
	Icon string `json:"icon"`
}

type owmForecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"` // m/s with units=metric
		} `json:"wind"`
		Weather []owmCondition `json:"weather"`
		DtTxt   string         `json:"dt_txt"`
	} `json:"list"`
}

func (p *OpenWeatherMap) Fetch(ctx context.Context, city string) (*models.WeatherResponse, error) {
	if err := Validate(city); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "WeatherLookup/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch forecast: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrSourceUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, city)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d: %s", ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	var data owmForecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrSourceUnavailable, err)
	}
	if len(data.List) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, city)
	}
	if len(data.List) < 1+forecastDays {
		return nil, fmt.Errorf("%w: only %d forecast entries returned", ErrSourceUnavailable, len(data.List))
	}

	first := data.List[0]
	condition, icon := owmWeather(first.Weather)
	out := &models.WeatherResponse{
		Current: models.WeatherReading{
			Location:           data.City.Name,
			TemperatureCelsius: first.Main.Temp,
			Condition:          condition,
			HumidityPercent:    first.Main.Humidity,
			WindSpeedKmh:       first.Wind.Speed * 3.6,
			Icon:               icon,
		},
		Forecast: make([]models.ForecastDay, 0, forecastDays),
	}

	for _, item := range data.List[1 : 1+forecastDays] {
		at, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			return nil, fmt.Errorf("%w: parse forecast time %q: %v", ErrSourceUnavailable, item.DtTxt, err)
		}
		condition, icon := owmWeather(item.Weather)
		out.Forecast = append(out.Forecast, models.ForecastDay{
			Label:       at.Weekday().String(),
			Date:        at.Format(dateLayout),
			HighCelsius: item.Main.TempMax,
			LowCelsius:  item.Main.TempMin,
			Condition:   condition,
			Icon:        icon,
		})
	}

	return out, nil
}

func owmWeather(w []owmCondition) (condition, icon string) {
	if len(w) == 0 {
		return "", ""
	}
	return w[0].Main, w[0].Icon
}
