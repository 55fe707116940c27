package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/view_models"
	mem "github.com/FRUITS-CAPRESE/Oidemase/pkg/memcache"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

const SessionTTL = 2 * time.Hour

type SessionServiceInterface interface {
	CreateSession(ctx context.Context) (response_models.NewSessionResponse, error)
	GetView(sessionID string) (response_models.SessionView, error)
	ToggleSelect(ctx context.Context, sessionID, spotID string) (response_models.SessionView, error)
	PrefetchAll(ctx context.Context, sessionID string) (response_models.SessionView, error)
	RequestAlternatives(ctx context.Context, sessionID string) (response_models.SessionView, error)
	CloseModal(sessionID string) (response_models.SessionView, error)
}

// SessionService drives the per-session view-state machine: selection
// toggling, on-demand and batch congestion fetches, and the alternatives
// flow. All model calls go through the congestion/alternatives services;
// results land in keyed slots guarded by generation counters so a superseded
// completion never overwrites a fresher one.
type SessionService struct {
	store        mem.SessionStoreInterface
	spots        SpotServiceInterface
	congestion   CongestionServiceInterface
	alternatives AlternativesServiceInterface
}

func NewSessionService(
	store mem.SessionStoreInterface,
	spots SpotServiceInterface,
	congestion CongestionServiceInterface,
	alternatives AlternativesServiceInterface,
) SessionServiceInterface {
	return &SessionService{
		store:        store,
		spots:        spots,
		congestion:   congestion,
		alternatives: alternatives,
	}
}

func (s *SessionService) CreateSession(ctx context.Context) (response_models.NewSessionResponse, error) {
	spots, err := s.spots.ListSpots(ctx)
	if err != nil {
		return response_models.NewSessionResponse{}, err
	}

	state := view_models.NewSessionState(uuid.New().String())
	s.store.Put(state)

	token, err := utils.CreateSessionToken(state.ID, SessionTTL)
	if err != nil {
		log.Printf("Error signing session token: %v", err)
		return response_models.NewSessionResponse{}, err
	}

	return response_models.NewSessionResponse{
		Token: token,
		View:  state.Snapshot(),
		Spots: spots,
	}, nil
}

func (s *SessionService) state(sessionID string) (*view_models.SessionState, error) {
	state := s.store.Get(sessionID)
	if state == nil {
		return nil, utils.ErrSessionNotFound
	}
	return state, nil
}

func (s *SessionService) GetView(sessionID string) (response_models.SessionView, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return response_models.SessionView{}, err
	}
	return state.Snapshot(), nil
}

// ToggleSelect selects or deselects a spot. A fresh selection with no usable
// cached slot triggers one prediction; failures degrade the slot to unknown
// instead of propagating. Deselecting never calls the model.
func (s *SessionService) ToggleSelect(ctx context.Context, sessionID, spotID string) (response_models.SessionView, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return response_models.SessionView{}, err
	}

	spot, err := s.spots.GetCatalogSpot(ctx, spotID)
	if err != nil {
		return response_models.SessionView{}, err
	}

	outcome := state.BeginSelect(spotID)
	if outcome.ToggledOff || !outcome.NeedsFetch {
		return state.Snapshot(), nil
	}

	info, err := s.congestion.PredictForSpot(ctx, spot.Name)
	if err != nil {
		state.FailCongestion(spotID, outcome.Generation, "Could not fetch congestion data.")
		return state.Snapshot(), nil
	}

	if !state.CompleteCongestion(spotID, outcome.Generation, info) {
		log.Printf("congestion result for %s superseded, dropped", spotID)
	}
	return state.Snapshot(), nil
}

// PrefetchAll fetches congestion for the whole catalog concurrently. Each
// spot's failure is isolated: it degrades only that spot's slot.
func (s *SessionService) PrefetchAll(ctx context.Context, sessionID string) (response_models.SessionView, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return response_models.SessionView{}, err
	}

	spots, err := s.spots.ListSpots(ctx)
	if err != nil {
		return response_models.SessionView{}, err
	}

	ids := make([]string, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}
	generations := state.BeginPrefetch(ids)

	var wg sync.WaitGroup
	for _, spot := range spots {
		wg.Add(1)
		go func(id, name string, generation uint64) {
			defer wg.Done()
			info, err := s.congestion.PredictForSpot(ctx, name)
			if err != nil {
				state.FailCongestion(id, generation, fmt.Sprintf("Failed to load data for %s.", name))
				return
			}
			if !state.CompleteCongestion(id, generation, info) {
				log.Printf("prefetch result for %s superseded, dropped", id)
			}
		}(spot.ID, spot.Name, generations[spot.ID])
	}
	wg.Wait()

	return state.Snapshot(), nil
}

// RequestAlternatives runs the alternatives flow for the selected spot. On
// success the modal opens with the suggestions; on failure the modal stays
// closed and the error surfaces to the caller.
func (s *SessionService) RequestAlternatives(ctx context.Context, sessionID string) (response_models.SessionView, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return response_models.SessionView{}, err
	}

	spotID, level, generation, err := state.BeginAlternatives()
	if err != nil {
		if errors.Is(err, view_models.ErrNoSpotSelected) || errors.Is(err, view_models.ErrLevelNotEligible) {
			return state.Snapshot(), utils.ErrAlternativesUnavailable
		}
		return state.Snapshot(), err
	}

	spot, err := s.spots.GetCatalogSpot(ctx, spotID)
	if err != nil {
		state.FailAlternatives(generation)
		return state.Snapshot(), err
	}

	alternatives, err := s.alternatives.RecommendForSpot(ctx, *spot, level)
	if err != nil {
		state.FailAlternatives(generation)
		return state.Snapshot(), err
	}

	if !state.CompleteAlternatives(generation, alternatives) {
		log.Printf("alternatives result for %s superseded, dropped", spotID)
	}
	return state.Snapshot(), nil
}

func (s *SessionService) CloseModal(sessionID string) (response_models.SessionView, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return response_models.SessionView{}, err
	}
	state.CloseModal()
	return state.Snapshot(), nil
}
