package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrAnalysisFailed marks a model response that could not be turned into
// a calorie estimate. Callers surface it as a friendly inline message.
var ErrAnalysisFailed = errors.New("could not analyze meal")

type GeminiService struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		client:  &http.Client{Timeout: 15 * time.Second},
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   "gemini-2.5-flash-preview-05-20",
		baseURL: "https://generativelanguage.googleapis.com",
	}
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction geminiContent   `json:"systemInstruction"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete sends one synchronous generation request. There is no retry:
// the caller degrades to an inline message on any error.
func (g *GeminiService) Complete(systemPrompt, userQuery string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("GEMINI_API_KEY not set")
	}

	payload := geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: userQuery}}}},
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	resp, err := g.client.Post(u, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to call AI service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read AI response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI service error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse AI response JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("AI response contained no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

const caloriePrompt = "You are a nutritional analysis expert. Based on the user's meal description, " +
	"return a JSON object with your best estimate for `calories`. ONLY return the JSON object. " +
	"Example: {\"calories\": 350}"

// EstimateCalories asks the model for a calorie estimate of a free-text
// meal description. The model is told to answer with bare JSON but often
// wraps it in prose, so the first well-formed {...} substring is parsed.
func (g *GeminiService) EstimateCalories(mealDescription string) (int, error) {
	raw, err := g.Complete(caloriePrompt, mealDescription)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	obj, ok := extractJSONObject(raw)
	if !ok {
		return 0, fmt.Errorf("%w: no JSON object in response", ErrAnalysisFailed)
	}

	var out struct {
		Calories *float64 `json:"calories"`
	}
	if err := json.Unmarshal([]byte(obj), &out); err != nil || out.Calories == nil {
		return 0, fmt.Errorf("%w: malformed calories JSON", ErrAnalysisFailed)
	}
	return int(*out.Calories), nil
}

// extractJSONObject returns the first balanced {...} substring of s,
// respecting string literals and escapes.
func extractJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
