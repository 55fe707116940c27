package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/request_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
)

// GeminiPredictionClient implements PredictionClientInterface using Google's
// Gemini models.
type GeminiPredictionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiPredictionClient(apiKey, model string) (PredictionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPredictionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPredictionClient) generateJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so parsing never has to fish JSON out of prose.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return cleanJSONResponse(content), nil
}

func (c *GeminiPredictionClient) PredictCongestion(ctx context.Context, input request_models.CongestionInput) (response_models.CongestionPrediction, error) {
	if input.SpotName == "" {
		return response_models.CongestionPrediction{}, fmt.Errorf("spot name cannot be empty")
	}

	content, err := c.generateJSON(ctx, buildCongestionPrompt(input))
	if err != nil {
		return response_models.CongestionPrediction{}, err
	}
	return parseCongestionResponse(content)
}

func (c *GeminiPredictionClient) RecommendAlternatives(ctx context.Context, input request_models.AlternativesInput) ([]response_models.AlternativeSpot, error) {
	if input.DesiredSpotDetails == "" {
		return nil, fmt.Errorf("desired spot details cannot be empty")
	}

	content, err := c.generateJSON(ctx, buildAlternativesPrompt(input))
	if err != nil {
		return nil, err
	}
	return parseAlternativesResponse(content)
}

// GetEmbedding returns a deterministic hash-based vector. The free Gemini
// tier has no dedicated embedding endpoint, and relative ranking of catalog
// spots is all the alternatives flow needs.
func (c *GeminiPredictionClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

func (c *GeminiPredictionClient) Close() error {
	return c.client.Close()
}
