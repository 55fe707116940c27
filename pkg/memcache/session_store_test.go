package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/view_models"
)

func TestSessionStorePutGet(t *testing.T) {
	store := NewSessionStore(time.Hour)

	state := view_models.NewSessionState("s1")
	store.Put(state)

	got := store.Get("s1")
	require.NotNil(t, got)
	assert.Same(t, state, got)

	assert.Nil(t, store.Get("missing"))
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)

	store.Put(view_models.NewSessionState("s1"))
	time.Sleep(40 * time.Millisecond)

	assert.Nil(t, store.Get("s1"))
}

func TestSessionStoreSlidingTTL(t *testing.T) {
	store := NewSessionStore(60 * time.Millisecond)

	store.Put(view_models.NewSessionState("s1"))

	// Each read pushes the deadline out, so the session outlives its TTL.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		require.NotNil(t, store.Get("s1"), "read %d", i)
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(time.Hour)

	store.Put(view_models.NewSessionState("s1"))
	store.Delete("s1")

	assert.Nil(t, store.Get("s1"))
}
