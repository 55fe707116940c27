package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/request_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
)

// PredictionClientInterface is the boundary to the generative model. Both
// operations are single-attempt: no retry, no backoff, no caching. The JSON
// schema validation here is the only defense against malformed model output.
type PredictionClientInterface interface {
	PredictCongestion(ctx context.Context, input request_models.CongestionInput) (response_models.CongestionPrediction, error)
	RecommendAlternatives(ctx context.Context, input request_models.AlternativesInput) ([]response_models.AlternativeSpot, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewPredictionClient creates a Gemini or OpenAI backed client based on config.
func NewPredictionClient(provider, apiKey, model string) (PredictionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPredictionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPredictionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported prediction provider: %s", provider)
	}
}

func buildCongestionPrompt(input request_models.CongestionInput) string {
	var prompt strings.Builder

	prompt.WriteString("You are an AI assistant that predicts the congestion level of a tourist spot.\n\n")
	prompt.WriteString("Based on the following information, predict the congestion level (low, moderate, or high) and explain your reasoning.\n\n")
	fmt.Fprintf(&prompt, "Spot Name: %s\n", input.SpotName)
	fmt.Fprintf(&prompt, "Recent Social Media Posts: %s\n", input.RecentSocialMediaPosts)
	fmt.Fprintf(&prompt, "Location Data: %s\n", input.LocationData)
	fmt.Fprintf(&prompt, "Official Announcements: %s\n", input.OfficialAnnouncements)
	fmt.Fprintf(&prompt, "Historical Data: %s\n\n", input.HistoricalData)
	prompt.WriteString(`Return JSON only, matching exactly: {"congestionLevel":"low|moderate|high","explanation":"..."}`)
	prompt.WriteString("\nNo comments, no markdown.")

	return prompt.String()
}

func buildAlternativesPrompt(input request_models.AlternativesInput) string {
	var prompt strings.Builder

	prompt.WriteString("You are an AI travel assistant for Hakodate, Japan. A user wants to visit a specific spot, but it is too crowded. ")
	prompt.WriteString("Based on their preferences, location and the spot they want to visit, suggest alternative spots for them to visit.\n\n")
	fmt.Fprintf(&prompt, "User Preferences: %s\n", input.UserPreferences)
	fmt.Fprintf(&prompt, "Current Location (encoded image placeholder): %s\n", input.CurrentLocation)
	fmt.Fprintf(&prompt, "Congestion Level of Desired Spot: %s\n", input.CongestionLevel)
	fmt.Fprintf(&prompt, "Desired Spot Details: %s\n", input.DesiredSpotDetails)

	if len(input.CandidateSpots) > 0 {
		prompt.WriteString("\nNearby catalog spots (prefer these when they fit):\n")
		for _, candidate := range input.CandidateSpots {
			fmt.Fprintf(&prompt, "- %s\n", candidate)
		}
	}

	prompt.WriteString("\nSuggest alternative spots that are similar to the desired spot but less crowded. ")
	prompt.WriteString("Consider the user's preferences and current location when making your suggestions.\n\n")
	prompt.WriteString(`Return JSON only, matching exactly: {"alternativeSpots":[{"name":"...","description":"...","distance":"...","travelTime":"...","reviewScore":4.2}]}`)
	prompt.WriteString("\nNo comments, no markdown.")

	return prompt.String()
}

// cleanJSONResponse strips markdown fences and any prose around the JSON
// payload. Needed for providers that ignore the JSON-only instruction.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.IndexAny(response, "{[")
	if start == -1 {
		return response
	}
	var end int
	if response[start] == '{' {
		end = strings.LastIndex(response, "}")
	} else {
		end = strings.LastIndex(response, "]")
	}
	if end > start {
		response = response[start : end+1]
	}
	return strings.TrimSpace(response)
}

func parseCongestionResponse(content string) (response_models.CongestionPrediction, error) {
	var prediction response_models.CongestionPrediction
	if !json.Valid([]byte(content)) {
		return prediction, fmt.Errorf("model returned invalid JSON")
	}
	if err := json.Unmarshal([]byte(content), &prediction); err != nil {
		return prediction, fmt.Errorf("failed to unmarshal congestion response: %w", err)
	}

	level, ok := response_models.ParseCongestionLevel(string(prediction.CongestionLevel))
	if !ok {
		return prediction, fmt.Errorf("model returned congestion level outside low/moderate/high: %q", prediction.CongestionLevel)
	}
	prediction.CongestionLevel = level
	return prediction, nil
}

func parseAlternativesResponse(content string) ([]response_models.AlternativeSpot, error) {
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("model returned invalid JSON")
	}
	var result response_models.AlternativeSpotsResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alternatives response: %w", err)
	}

	for i, spot := range result.AlternativeSpots {
		if strings.TrimSpace(spot.Name) == "" {
			return nil, fmt.Errorf("alternative %d: name cannot be empty", i+1)
		}
		if strings.TrimSpace(spot.Description) == "" {
			return nil, fmt.Errorf("alternative %d: description cannot be empty", i+1)
		}
	}

	if result.AlternativeSpots == nil {
		return []response_models.AlternativeSpot{}, nil
	}
	return result.AlternativeSpots, nil
}

const embeddingDimensions = 1536

// textToVector creates a deterministic hash-based vector for text. Good
// enough for ranking catalog spots against each other without a paid
// embedding endpoint.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, embeddingDimensions)
	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < embeddingDimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	var magnitude float32
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
