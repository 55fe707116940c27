package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/request_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
)

// OpenAIPredictionClient implements PredictionClientInterface using OpenAI
// chat completions with the JSON response format.
type OpenAIPredictionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPredictionClient(apiKey, model string) PredictionClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPredictionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPredictionClient) completeJSON(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	return cleanJSONResponse(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIPredictionClient) PredictCongestion(ctx context.Context, input request_models.CongestionInput) (response_models.CongestionPrediction, error) {
	if input.SpotName == "" {
		return response_models.CongestionPrediction{}, fmt.Errorf("spot name cannot be empty")
	}

	content, err := c.completeJSON(ctx, buildCongestionPrompt(input))
	if err != nil {
		return response_models.CongestionPrediction{}, err
	}
	return parseCongestionResponse(content)
}

func (c *OpenAIPredictionClient) RecommendAlternatives(ctx context.Context, input request_models.AlternativesInput) ([]response_models.AlternativeSpot, error) {
	if input.DesiredSpotDetails == "" {
		return nil, fmt.Errorf("desired spot details cannot be empty")
	}

	content, err := c.completeJSON(ctx, buildAlternativesPrompt(input))
	if err != nil {
		return nil, err
	}
	return parseAlternativesResponse(content)
}

func (c *OpenAIPredictionClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil || len(resp.Data) == 0 {
		// Same deterministic fallback the Gemini client uses; ranking only
		// needs consistency, not semantic quality.
		return textToVector(text), nil
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIPredictionClient) Close() error {
	return nil
}
