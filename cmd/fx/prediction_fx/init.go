package predictionfx

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/repositories"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/services"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

var Module = fx.Provide(
	ProvidePredictionClient,
	services.NewMockSocialFeed,
	services.NewMockLocationAnalytics,
	services.NewMockAnnouncementFeed,
	services.NewMockCongestionHistory,
	ProvideCongestionService,
	ProvideAlternativesService,
)

type PredictionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePredictionClient creates the generative-model client based on
// environment variables. Gemini is the default provider.
func ProvidePredictionClient() (utils.PredictionClientInterface, error) {
	config := getPredictionConfig()

	log.Printf("Initializing %s prediction client with model: %s", config.Provider, config.Model)

	client, err := utils.NewPredictionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction client: %w", err)
	}
	return client, nil
}

func ProvideCongestionService(
	client utils.PredictionClientInterface,
	social services.SocialFeedInterface,
	location services.LocationAnalyticsInterface,
	announcements services.AnnouncementFeedInterface,
	history services.CongestionHistoryInterface,
) services.CongestionServiceInterface {
	return services.NewCongestionService(client, social, location, announcements, history)
}

func ProvideAlternativesService(
	client utils.PredictionClientInterface,
	embedRepo repositories.SpotEmbeddingRepository,
) services.AlternativesServiceInterface {
	return services.NewAlternativesService(client, embedRepo)
}

func getPredictionConfig() PredictionConfig {
	provider := getEnvWithDefault("PREDICTION_PROVIDER", "gemini")

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return PredictionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
