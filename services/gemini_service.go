package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrModelUnavailable covers every upstream failure mode: network
// error, non-2xx status, or a response without the expected text part.
// Upstream error bodies are logged server-side and never returned.
var ErrModelUnavailable = errors.New("generative model unavailable")

type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGeminiService reads GEMINI_API_KEY and optionally GEMINI_MODEL /
// GEMINI_API_URL from the environment. Each call is attempted exactly
// once; the client timeout is the only deadline.
func NewGeminiService() *GeminiService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent", model)
	}
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// CheckIsFood asks the yes/no gate question about the image. Only a
// reply containing "yes" (case-folded) passes; empty, "no" or anything
// else the model says is treated as not food.
func (s *GeminiService) CheckIsFood(imageData []byte, mimeType string) (bool, error) {
	reply, err := s.generate(imageContents(imageData, mimeType, foodGatePrompt))
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(reply), "yes"), nil
}

// AnalyzeDishImage requests the per-100g nutrition breakdown for the
// image. Callers must pass the food gate first.
func (s *GeminiService) AnalyzeDishImage(imageData []byte, mimeType string) (string, error) {
	return s.generate(imageContents(imageData, mimeType, imageNutritionPrompt))
}

// AnalyzeNutrition estimates nutrition for a named dish and portion.
func (s *GeminiService) AnalyzeNutrition(dish, portion string) (string, error) {
	return s.generate(textContents(textNutritionPrompt(dish, portion)))
}

// GenerateMealPlan asks for 3-4 meal suggestions matching the given
// ingredients, cuisine, meal type and calorie target.
func (s *GeminiService) GenerateMealPlan(ingredients, cuisine, mealType string, targetCalories int) (string, error) {
	return s.generate(textContents(mealPlanPrompt(ingredients, cuisine, mealType, targetCalories)))
}

func imageContents(imageData []byte, mimeType, prompt string) []geminiContent {
	return []geminiContent{
		{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(imageData),
				}},
			},
		},
		{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		},
	}
}

func textContents(prompt string) []geminiContent {
	return []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: prompt}}},
	}
}

// generate performs one generateContent exchange and returns the first
// candidate's text. No retries.
func (s *GeminiService) generate(contents []geminiContent) (string, error) {
	payload, err := json.Marshal(geminiRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"?key="+url.QueryEscape(s.apiKey), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("gemini request error: %v", err)
		return "", ErrModelUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("gemini read error: %v", err)
		return "", ErrModelUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("gemini api error (%d): %s", resp.StatusCode, string(body))
		return "", ErrModelUnavailable
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		log.Printf("gemini decode error: %v", err)
		return "", ErrModelUnavailable
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		log.Printf("gemini response missing candidate text")
		return "", ErrModelUnavailable
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
