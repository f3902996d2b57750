package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// The two failure modes get distinct user-facing messages, so they are
// distinct sentinels.
var (
	ErrLocationNotFound   = errors.New("weather location not found")
	ErrWeatherUnavailable = errors.New("weather service unavailable")
)

type WeatherService struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  os.Getenv("WEATHER_API_KEY"),
		baseURL: "https://api.openweathermap.org",
	}
}

type WeatherReport struct {
	Description string
	TempC       float64
}

type weatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// CurrentWeather fetches the current conditions for a location name.
func (s *WeatherService) CurrentWeather(location string) (*WeatherReport, error) {
	u := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		s.baseURL, url.QueryEscape(location), s.apiKey)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrWeatherUnavailable, resp.StatusCode)
	}

	var wr weatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("%w: malformed payload", ErrWeatherUnavailable)
	}
	report := &WeatherReport{TempC: wr.Main.Temp}
	if len(wr.Weather) > 0 {
		report.Description = wr.Weather[0].Description
	}
	return report, nil
}

// Advice turns the current weather into a dashboard insight. Failures
// degrade to an informational message, never an error.
func (s *WeatherService) Advice(location string) Insight {
	if s.apiKey == "" {
		return Insight{Title: "Environmental Advisor", Message: "Weather API key not set."}
	}

	report, err := s.CurrentWeather(location)
	switch {
	case errors.Is(err, ErrLocationNotFound):
		return Insight{Title: "Environmental Advisor", Message: fmt.Sprintf("Could not find weather for '%s'.", location)}
	case err != nil:
		return Insight{Title: "Environmental Advisor", Message: "Could not connect to the weather service."}
	}

	if strings.Contains(report.Description, "rain") {
		return Insight{
			Title:   "Weather Alert",
			Message: fmt.Sprintf("It's raining in %s. A perfect day for an indoor workout!", location),
		}
	}
	return Insight{
		Title: "Today's Outlook",
		Message: fmt.Sprintf("It's %.1f°C with %s in %s. Looks like a great day for an outdoor activity!",
			report.TempC, report.Description, location),
	}
}
