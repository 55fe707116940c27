package services

import (
	"context"
	"log"
	"strings"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/request_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

type CongestionServiceInterface interface {
	PredictForSpot(ctx context.Context, spotName string) (response_models.CongestionInfo, error)
}

type CongestionService struct {
	client        utils.PredictionClientInterface
	social        SocialFeedInterface
	location      LocationAnalyticsInterface
	announcements AnnouncementFeedInterface
	history       CongestionHistoryInterface
}

func NewCongestionService(
	client utils.PredictionClientInterface,
	social SocialFeedInterface,
	location LocationAnalyticsInterface,
	announcements AnnouncementFeedInterface,
	history CongestionHistoryInterface,
) CongestionServiceInterface {
	return &CongestionService{
		client:        client,
		social:        social,
		location:      location,
		announcements: announcements,
		history:       history,
	}
}

// PredictForSpot gathers the four context signals and makes a single
// prediction call. Any failure comes back as ErrPredictionFailed; the caller
// owns the degraded "unknown" state.
func (s *CongestionService) PredictForSpot(ctx context.Context, spotName string) (response_models.CongestionInfo, error) {
	if strings.TrimSpace(spotName) == "" {
		return response_models.CongestionInfo{Level: response_models.CongestionUnknown}, utils.ErrInvalidInput
	}

	input := request_models.CongestionInput{SpotName: spotName}

	// Signal failures degrade to empty context rather than aborting the
	// prediction; the model copes with missing fields.
	var err error
	if input.RecentSocialMediaPosts, err = s.social.RecentPosts(ctx, spotName); err != nil {
		log.Printf("social feed unavailable for %s: %v", spotName, err)
	}
	if input.LocationData, err = s.location.DensitySummary(ctx, spotName); err != nil {
		log.Printf("location analytics unavailable for %s: %v", spotName, err)
	}
	if input.OfficialAnnouncements, err = s.announcements.CurrentAnnouncements(ctx, spotName); err != nil {
		log.Printf("announcement feed unavailable for %s: %v", spotName, err)
	}
	if input.HistoricalData, err = s.history.HistoricalSummary(ctx, spotName); err != nil {
		log.Printf("congestion history unavailable for %s: %v", spotName, err)
	}

	prediction, err := s.client.PredictCongestion(ctx, input)
	if err != nil {
		log.Printf("Error predicting congestion for %s: %v", spotName, err)
		return response_models.CongestionInfo{Level: response_models.CongestionUnknown}, utils.ErrPredictionFailed
	}

	return response_models.CongestionInfo{
		Level:       prediction.CongestionLevel,
		Explanation: prediction.Explanation,
	}, nil
}
