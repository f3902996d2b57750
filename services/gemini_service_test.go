package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"calories": 350}`, `{"calories": 350}`, true},
		{"prose around", `Sure! {"calories": 310} enjoy!`, `{"calories": 310}`, true},
		{"nested braces", `note {"a": {"b": 1}, "c": 2} tail`, `{"a": {"b": 1}, "c": 2}`, true},
		{"brace inside string", `{"note": "use { sparingly", "calories": 5}`, `{"note": "use { sparingly", "calories": 5}`, true},
		{"no object", `I cannot estimate that meal.`, "", false},
		{"unclosed", `{"calories": 310`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func geminiStub(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
	}))
}

func testGemini(srv *httptest.Server) *GeminiService {
	return &GeminiService{
		client:  &http.Client{Timeout: 2 * time.Second},
		apiKey:  "test-key",
		model:   "test-model",
		baseURL: srv.URL,
	}
}

func TestEstimateCaloriesWithProse(t *testing.T) {
	srv := geminiStub(t, `Sure! {"calories": 310} enjoy!`)
	defer srv.Close()

	calories, err := testGemini(srv).EstimateCalories("chicken salad")
	require.NoError(t, err)
	assert.Equal(t, 310, calories)
}

func TestEstimateCaloriesNoJSON(t *testing.T) {
	srv := geminiStub(t, "I could not work that out, sorry.")
	defer srv.Close()

	_, err := testGemini(srv).EstimateCalories("mystery stew")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestEstimateCaloriesMissingField(t *testing.T) {
	srv := geminiStub(t, `{"kcal": 200}`)
	defer srv.Close()

	_, err := testGemini(srv).EstimateCalories("toast")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestEstimateCaloriesServiceDown(t *testing.T) {
	srv := geminiStub(t, "")
	srv.Close() // refuse connections

	_, err := testGemini(srv).EstimateCalories("pasta")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestCompleteMissingAPIKey(t *testing.T) {
	g := &GeminiService{client: http.DefaultClient, baseURL: "http://unused"}
	_, err := g.Complete("system", "query")
	assert.Error(t, err)
}
