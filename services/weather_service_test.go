package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeather(srv *httptest.Server) *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: 2 * time.Second},
		apiKey:  "test-key",
		baseURL: srv.URL,
	}
}

func TestCurrentWeatherOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "units=metric")
		w.Write([]byte(`{"weather":[{"description":"clear sky"}],"main":{"temp":21.5}}`))
	}))
	defer srv.Close()

	report, err := testWeather(srv).CurrentWeather("Berlin,DE")
	require.NoError(t, err)
	assert.Equal(t, "clear sky", report.Description)
	assert.InDelta(t, 21.5, report.TempC, 1e-9)
}

func TestCurrentWeatherLocationNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testWeather(srv).CurrentWeather("Atlantis")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestCurrentWeatherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testWeather(srv).CurrentWeather("Berlin,DE")
	assert.ErrorIs(t, err, ErrWeatherUnavailable)
}

func TestAdviceRainSuggestsIndoorWorkout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[{"description":"light rain"}],"main":{"temp":12.0}}`))
	}))
	defer srv.Close()

	insight := testWeather(srv).Advice("London,GB")
	assert.Equal(t, "Weather Alert", insight.Title)
	assert.Contains(t, insight.Message, "indoor workout")
}

func TestAdviceDegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	insight := testWeather(srv).Advice("Berlin,DE")
	assert.Equal(t, "Environmental Advisor", insight.Title)
	assert.Contains(t, insight.Message, "Could not connect")
}

func TestAdviceMissingKey(t *testing.T) {
	s := &WeatherService{client: http.DefaultClient, baseURL: "http://unused"}
	insight := s.Advice("Berlin,DE")
	assert.Equal(t, "Environmental Advisor", insight.Title)
	assert.Contains(t, insight.Message, "key not set")
}
