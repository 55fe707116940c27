package services

import (
	"context"
	"log"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/db_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/repositories"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

type SpotServiceInterface interface {
	ListSpots(ctx context.Context) ([]response_models.Spot, error)
	GetSpotByID(ctx context.Context, id string) (response_models.Spot, error)
	GetCatalogSpot(ctx context.Context, id string) (*db_models.Spot, error)
}

type SpotService struct {
	spotRepository repositories.SpotRepository
}

func NewSpotService(spotRepository repositories.SpotRepository) SpotServiceInterface {
	return &SpotService{spotRepository: spotRepository}
}

func toSpotResponse(spot db_models.Spot) response_models.Spot {
	return response_models.Spot{
		ID:          spot.ID,
		Name:        spot.Name,
		Category:    spot.Category,
		Description: spot.Description,
		Image:       spot.Image,
		Features:    spot.Features,
	}
}

func (s *SpotService) ListSpots(ctx context.Context) ([]response_models.Spot, error) {
	spots, err := s.spotRepository.List(ctx)
	if err != nil {
		log.Printf("Error listing spots: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Spot, 0, len(spots))
	for _, spot := range spots {
		responses = append(responses, toSpotResponse(spot))
	}
	return responses, nil
}

func (s *SpotService) GetSpotByID(ctx context.Context, id string) (response_models.Spot, error) {
	spot, err := s.GetCatalogSpot(ctx, id)
	if err != nil {
		return response_models.Spot{}, err
	}
	return toSpotResponse(*spot), nil
}

// GetCatalogSpot returns the full catalog record, including the AI-facing
// detail string the response shape omits.
func (s *SpotService) GetCatalogSpot(ctx context.Context, id string) (*db_models.Spot, error) {
	spot, err := s.spotRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching spot %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if spot == nil {
		return nil, utils.ErrSpotNotFound
	}
	return spot, nil
}
