package services

import (
	"context"
	"fmt"
	"log"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/db_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/request_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/repositories"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

// PlaceholderLocationImageURI is a 1x1 transparent PNG standing in for real
// geolocation input.
const PlaceholderLocationImageURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// PlaceholderSpotImageURL backfills suggestions the model returned without
// an image reference.
const PlaceholderSpotImageURL = "https://placehold.co/400x300.png"

// defaultUserPreferences stands in for a real preference profile.
const defaultUserPreferences = "Interested in scenic views, historical sites, and local food experiences."

const maxCandidateSpots = 5

type AlternativesServiceInterface interface {
	RecommendForSpot(ctx context.Context, spot db_models.Spot, level response_models.CongestionLevel) ([]response_models.AlternativeSpot, error)
}

type AlternativesService struct {
	client    utils.PredictionClientInterface
	embedRepo repositories.SpotEmbeddingRepository
}

func NewAlternativesService(
	client utils.PredictionClientInterface,
	embedRepo repositories.SpotEmbeddingRepository,
) AlternativesServiceInterface {
	return &AlternativesService{
		client:    client,
		embedRepo: embedRepo,
	}
}

// RecommendForSpot makes a single recommendation call for a crowded spot.
// The congestion annotation is appended to the spot details before the call;
// suggestions missing an image get the fixed placeholder.
func (s *AlternativesService) RecommendForSpot(ctx context.Context, spot db_models.Spot, level response_models.CongestionLevel) ([]response_models.AlternativeSpot, error) {
	if !level.AllowsAlternatives() {
		return nil, utils.ErrAlternativesUnavailable
	}

	input := request_models.AlternativesInput{
		UserPreferences:    defaultUserPreferences,
		CurrentLocation:    PlaceholderLocationImageURI,
		CongestionLevel:    string(level),
		DesiredSpotDetails: fmt.Sprintf("%s Current congestion: %s.", spot.DetailsForAI, level),
		CandidateSpots:     s.candidateSpots(ctx, spot),
	}

	alternatives, err := s.client.RecommendAlternatives(ctx, input)
	if err != nil {
		log.Printf("Error recommending alternatives for %s: %v", spot.Name, err)
		return nil, utils.ErrRecommendationFailed
	}

	for i := range alternatives {
		if alternatives[i].Image == "" {
			alternatives[i].Image = PlaceholderSpotImageURL
		}
	}
	return alternatives, nil
}

// candidateSpots ranks the rest of the catalog by embedding distance to give
// the model local grounding. Failures just mean an uncontexted prompt.
func (s *AlternativesService) candidateSpots(ctx context.Context, spot db_models.Spot) []string {
	vector, err := s.client.GetEmbedding(ctx, spot.DetailsForAI)
	if err != nil {
		log.Printf("embedding unavailable for %s: %v", spot.ID, err)
		return nil
	}

	neighbors, err := s.embedRepo.GetNearestByVector(vector, spot.ID, maxCandidateSpots)
	if err != nil {
		log.Printf("candidate ranking unavailable for %s: %v", spot.ID, err)
		return nil
	}

	candidates := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		candidates = append(candidates, fmt.Sprintf("%s (%s)", n.Name, n.Category))
	}
	return candidates
}
