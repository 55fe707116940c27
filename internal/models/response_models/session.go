package response_models

// Slot and flow state strings exposed to clients. They match the view-state
// variants tracked server side.
const (
	SlotAbsent  = "absent"
	SlotLoading = "loading"
	SlotReady   = "ready"
	SlotFailed  = "failed"

	AlternativesIdle       = "idle"
	AlternativesRequesting = "requesting"
	AlternativesDisplayed  = "displayed"
	AlternativesFailed     = "failed"
)

type CongestionSlotView struct {
	State       string            `json:"state"`
	Level       CongestionLevel   `json:"level"`
	Display     CongestionDisplay `json:"display"`
	Explanation string            `json:"explanation,omitempty"`
}

type AlternativesView struct {
	State     string            `json:"state"`
	ForSpotID string            `json:"for_spot_id,omitempty"`
	Spots     []AlternativeSpot `json:"spots"`
}

type SessionView struct {
	SessionID      string                        `json:"session_id"`
	SelectedSpotID string                        `json:"selected_spot_id,omitempty"`
	ModalOpen      bool                          `json:"modal_open"`
	Congestion     map[string]CongestionSlotView `json:"congestion"`
	Alternatives   AlternativesView              `json:"alternatives"`
}

type NewSessionResponse struct {
	Token string      `json:"token"`
	View  SessionView `json:"view"`
	Spots []Spot      `json:"spots"`
}
