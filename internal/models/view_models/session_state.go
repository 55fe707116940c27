package view_models

import (
	"errors"
	"sync"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
)

var (
	ErrNoSpotSelected   = errors.New("no spot selected")
	ErrLevelNotEligible = errors.New("congestion level does not allow alternatives")
)

// CongestionSlot is the keyed per-spot result slot. Generation is bumped
// every time a fetch begins for the slot; a completion carrying an older
// generation is superseded and dropped.
type CongestionSlot struct {
	State       string
	Generation  uint64
	Level       response_models.CongestionLevel
	Explanation string
}

type AlternativesResult struct {
	State      string
	ForSpotID  string
	Generation uint64
	Spots      []response_models.AlternativeSpot
}

// SessionState is the server-side view-state for one browser session: the
// selected spot, the per-spot congestion slots, the alternatives flow and
// the modal flag. All transitions go through its methods under the mutex;
// concurrent model-call completions only ever touch their own keyed slot.
type SessionState struct {
	mu sync.Mutex

	ID             string
	SelectedSpotID string
	ModalOpen      bool
	Congestion     map[string]*CongestionSlot
	Alternatives   AlternativesResult
}

func NewSessionState(id string) *SessionState {
	return &SessionState{
		ID:           id,
		Congestion:   make(map[string]*CongestionSlot),
		Alternatives: AlternativesResult{State: response_models.AlternativesIdle},
	}
}

func (s *SessionState) slot(spotID string) *CongestionSlot {
	slot, ok := s.Congestion[spotID]
	if !ok {
		slot = &CongestionSlot{State: response_models.SlotAbsent, Level: response_models.CongestionUnknown}
		s.Congestion[spotID] = slot
	}
	return slot
}

type SelectOutcome struct {
	ToggledOff bool
	NeedsFetch bool
	Generation uint64
}

// BeginSelect toggles selection. Selecting the already-selected spot
// deselects it without touching its slot, so no extra model call happens.
// Otherwise the spot becomes selected and, unless its slot already holds a
// usable result, the slot moves to loading under a fresh generation.
func (s *SessionState) BeginSelect(spotID string) SelectOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SelectedSpotID == spotID {
		s.SelectedSpotID = ""
		return SelectOutcome{ToggledOff: true}
	}

	s.SelectedSpotID = spotID
	slot := s.slot(spotID)
	if slot.State == response_models.SlotReady && slot.Level != response_models.CongestionUnknown {
		return SelectOutcome{}
	}

	slot.State = response_models.SlotLoading
	slot.Generation++
	return SelectOutcome{NeedsFetch: true, Generation: slot.Generation}
}

// BeginPrefetch marks every given spot loading under fresh generations and
// returns the generation per spot id.
func (s *SessionState) BeginPrefetch(spotIDs []string) map[string]uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	generations := make(map[string]uint64, len(spotIDs))
	for _, id := range spotIDs {
		slot := s.slot(id)
		slot.State = response_models.SlotLoading
		slot.Generation++
		generations[id] = slot.Generation
	}
	return generations
}

// CompleteCongestion writes a prediction result into its keyed slot. Returns
// false when the write was superseded by a newer fetch for the same spot.
func (s *SessionState) CompleteCongestion(spotID string, generation uint64, info response_models.CongestionInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.Congestion[spotID]
	if !ok || slot.Generation != generation {
		return false
	}
	slot.State = response_models.SlotReady
	slot.Level = info.Level
	slot.Explanation = info.Explanation
	return true
}

// FailCongestion records a failed prediction: the stored level is exactly
// unknown and the explanation describes the failure.
func (s *SessionState) FailCongestion(spotID string, generation uint64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.Congestion[spotID]
	if !ok || slot.Generation != generation {
		return false
	}
	slot.State = response_models.SlotFailed
	slot.Level = response_models.CongestionUnknown
	slot.Explanation = reason
	return true
}

// BeginAlternatives gates the alternatives flow on the selected spot's
// stored level and moves the flow to requesting. A new request supersedes
// any prior result.
func (s *SessionState) BeginAlternatives() (string, response_models.CongestionLevel, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SelectedSpotID == "" {
		return "", response_models.CongestionUnknown, 0, ErrNoSpotSelected
	}
	slot, ok := s.Congestion[s.SelectedSpotID]
	if !ok || !slot.Level.AllowsAlternatives() {
		return "", response_models.CongestionUnknown, 0, ErrLevelNotEligible
	}

	s.Alternatives.State = response_models.AlternativesRequesting
	s.Alternatives.ForSpotID = s.SelectedSpotID
	s.Alternatives.Generation++
	s.Alternatives.Spots = nil
	s.ModalOpen = false
	return s.SelectedSpotID, slot.Level, s.Alternatives.Generation, nil
}

func (s *SessionState) CompleteAlternatives(generation uint64, spots []response_models.AlternativeSpot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Alternatives.Generation != generation {
		return false
	}
	s.Alternatives.State = response_models.AlternativesDisplayed
	s.Alternatives.Spots = spots
	s.ModalOpen = true
	return true
}

// FailAlternatives records the failure; the modal stays closed.
func (s *SessionState) FailAlternatives(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Alternatives.Generation != generation {
		return false
	}
	s.Alternatives.State = response_models.AlternativesFailed
	s.Alternatives.Spots = nil
	s.ModalOpen = false
	return true
}

// CloseModal discards the displayed suggestions.
func (s *SessionState) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ModalOpen = false
	s.Alternatives.State = response_models.AlternativesIdle
	s.Alternatives.ForSpotID = ""
	s.Alternatives.Spots = nil
}

// SelectedCongestion returns the selected spot id and its stored level.
func (s *SessionState) SelectedCongestion() (string, response_models.CongestionLevel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SelectedSpotID == "" {
		return "", response_models.CongestionUnknown, false
	}
	slot, ok := s.Congestion[s.SelectedSpotID]
	if !ok {
		return s.SelectedSpotID, response_models.CongestionUnknown, false
	}
	return s.SelectedSpotID, slot.Level, true
}

// Snapshot renders the state into the response shape.
func (s *SessionState) Snapshot() response_models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	congestion := make(map[string]response_models.CongestionSlotView, len(s.Congestion))
	for id, slot := range s.Congestion {
		congestion[id] = response_models.CongestionSlotView{
			State:       slot.State,
			Level:       slot.Level,
			Display:     slot.Level.Display(),
			Explanation: slot.Explanation,
		}
	}

	spots := s.Alternatives.Spots
	if spots == nil {
		spots = []response_models.AlternativeSpot{}
	}

	return response_models.SessionView{
		SessionID:      s.ID,
		SelectedSpotID: s.SelectedSpotID,
		ModalOpen:      s.ModalOpen,
		Congestion:     congestion,
		Alternatives: response_models.AlternativesView{
			State:     s.Alternatives.State,
			ForSpotID: s.Alternatives.ForSpotID,
			Spots:     spots,
		},
	}
}
