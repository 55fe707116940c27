package view_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
)

func TestBeginSelectTogglesOffWithoutFetch(t *testing.T) {
	state := NewSessionState("s1")

	first := state.BeginSelect("goryokaku")
	assert.False(t, first.ToggledOff)
	assert.True(t, first.NeedsFetch)

	ok := state.CompleteCongestion("goryokaku", first.Generation, response_models.CongestionInfo{
		Level:       response_models.CongestionHigh,
		Explanation: "cherry blossom season",
	})
	require.True(t, ok)

	second := state.BeginSelect("goryokaku")
	assert.True(t, second.ToggledOff)
	assert.False(t, second.NeedsFetch)

	// The slot keeps its result through the deselect.
	view := state.Snapshot()
	assert.Empty(t, view.SelectedSpotID)
	assert.Equal(t, response_models.SlotReady, view.Congestion["goryokaku"].State)
	assert.Equal(t, response_models.CongestionHigh, view.Congestion["goryokaku"].Level)
}

func TestBeginSelectReusesReadySlot(t *testing.T) {
	state := NewSessionState("s1")

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.CompleteCongestion("goryokaku", outcome.Generation, response_models.CongestionInfo{Level: response_models.CongestionLow}))

	state.BeginSelect("mount_hakodate")
	again := state.BeginSelect("goryokaku")
	assert.False(t, again.NeedsFetch, "ready slot must not trigger a second fetch")
}

func TestBeginSelectRefetchesUnknownSlot(t *testing.T) {
	state := NewSessionState("s1")

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.FailCongestion("goryokaku", outcome.Generation, "Could not fetch congestion data."))

	state.BeginSelect("goryokaku") // deselect
	again := state.BeginSelect("goryokaku")
	assert.True(t, again.NeedsFetch, "failed slot holds no usable result")
	assert.Greater(t, again.Generation, outcome.Generation)
}

func TestStaleCongestionWriteIsDropped(t *testing.T) {
	state := NewSessionState("s1")

	stale := state.BeginSelect("goryokaku")
	state.BeginSelect("goryokaku") // deselect
	fresh := state.BeginSelect("goryokaku")

	assert.False(t, state.CompleteCongestion("goryokaku", stale.Generation, response_models.CongestionInfo{Level: response_models.CongestionLow}))
	assert.True(t, state.CompleteCongestion("goryokaku", fresh.Generation, response_models.CongestionInfo{Level: response_models.CongestionHigh}))

	view := state.Snapshot()
	assert.Equal(t, response_models.CongestionHigh, view.Congestion["goryokaku"].Level)
}

func TestFailCongestionStoresUnknownWithReason(t *testing.T) {
	state := NewSessionState("s1")

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.FailCongestion("goryokaku", outcome.Generation, "Could not fetch congestion data."))

	view := state.Snapshot()
	slot := view.Congestion["goryokaku"]
	assert.Equal(t, response_models.SlotFailed, slot.State)
	assert.Equal(t, response_models.CongestionUnknown, slot.Level)
	assert.Equal(t, "Could not fetch congestion data.", slot.Explanation)
	assert.Equal(t, "Unknown", slot.Display.Label)
}

func TestBeginPrefetchMarksAllSpotsLoading(t *testing.T) {
	state := NewSessionState("s1")

	generations := state.BeginPrefetch([]string{"goryokaku", "mount_hakodate"})
	require.Len(t, generations, 2)

	view := state.Snapshot()
	assert.Equal(t, response_models.SlotLoading, view.Congestion["goryokaku"].State)
	assert.Equal(t, response_models.SlotLoading, view.Congestion["mount_hakodate"].State)
}

func TestBeginAlternativesGating(t *testing.T) {
	state := NewSessionState("s1")

	_, _, _, err := state.BeginAlternatives()
	assert.ErrorIs(t, err, ErrNoSpotSelected)

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.CompleteCongestion("goryokaku", outcome.Generation, response_models.CongestionInfo{Level: response_models.CongestionLow}))

	_, _, _, err = state.BeginAlternatives()
	assert.ErrorIs(t, err, ErrLevelNotEligible)
}

func TestAlternativesFlow(t *testing.T) {
	state := NewSessionState("s1")

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.CompleteCongestion("goryokaku", outcome.Generation, response_models.CongestionInfo{Level: response_models.CongestionHigh}))

	spotID, level, generation, err := state.BeginAlternatives()
	require.NoError(t, err)
	assert.Equal(t, "goryokaku", spotID)
	assert.Equal(t, response_models.CongestionHigh, level)

	spots := []response_models.AlternativeSpot{{Name: "Motomachi District", Description: "Historic slopes"}}
	require.True(t, state.CompleteAlternatives(generation, spots))

	view := state.Snapshot()
	assert.True(t, view.ModalOpen)
	assert.Equal(t, response_models.AlternativesDisplayed, view.Alternatives.State)
	assert.Equal(t, "goryokaku", view.Alternatives.ForSpotID)
	assert.Len(t, view.Alternatives.Spots, 1)

	state.CloseModal()
	view = state.Snapshot()
	assert.False(t, view.ModalOpen)
	assert.Equal(t, response_models.AlternativesIdle, view.Alternatives.State)
	assert.Empty(t, view.Alternatives.Spots)
}

func TestFailAlternativesKeepsModalClosed(t *testing.T) {
	state := NewSessionState("s1")

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.CompleteCongestion("goryokaku", outcome.Generation, response_models.CongestionInfo{Level: response_models.CongestionModerate}))

	_, _, generation, err := state.BeginAlternatives()
	require.NoError(t, err)
	require.True(t, state.FailAlternatives(generation))

	view := state.Snapshot()
	assert.False(t, view.ModalOpen)
	assert.Equal(t, response_models.AlternativesFailed, view.Alternatives.State)
}

func TestStaleAlternativesWriteIsDropped(t *testing.T) {
	state := NewSessionState("s1")

	outcome := state.BeginSelect("goryokaku")
	require.True(t, state.CompleteCongestion("goryokaku", outcome.Generation, response_models.CongestionInfo{Level: response_models.CongestionHigh}))

	_, _, stale, err := state.BeginAlternatives()
	require.NoError(t, err)
	_, _, fresh, err := state.BeginAlternatives()
	require.NoError(t, err)
	require.Greater(t, fresh, stale)

	assert.False(t, state.CompleteAlternatives(stale, []response_models.AlternativeSpot{{Name: "old", Description: "old"}}))
	assert.True(t, state.CompleteAlternatives(fresh, []response_models.AlternativeSpot{{Name: "new", Description: "new"}}))

	view := state.Snapshot()
	require.Len(t, view.Alternatives.Spots, 1)
	assert.Equal(t, "new", view.Alternatives.Spots[0].Name)
}

func TestSnapshotReturnsEmptySliceNotNil(t *testing.T) {
	view := NewSessionState("s1").Snapshot()
	assert.NotNil(t, view.Alternatives.Spots)
	assert.NotNil(t, view.Congestion)
}
