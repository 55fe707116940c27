package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

type stubSessionService struct {
	view      response_models.SessionView
	createErr error
	viewErr   error
}

func (s *stubSessionService) CreateSession(ctx context.Context) (response_models.NewSessionResponse, error) {
	if s.createErr != nil {
		return response_models.NewSessionResponse{}, s.createErr
	}
	return response_models.NewSessionResponse{Token: "tok", View: s.view}, nil
}

func (s *stubSessionService) GetView(sessionID string) (response_models.SessionView, error) {
	return s.view, s.viewErr
}

func (s *stubSessionService) ToggleSelect(ctx context.Context, sessionID, spotID string) (response_models.SessionView, error) {
	return s.view, s.viewErr
}

func (s *stubSessionService) PrefetchAll(ctx context.Context, sessionID string) (response_models.SessionView, error) {
	return s.view, s.viewErr
}

func (s *stubSessionService) RequestAlternatives(ctx context.Context, sessionID string) (response_models.SessionView, error) {
	return s.view, s.viewErr
}

func (s *stubSessionService) CloseModal(sessionID string) (response_models.SessionView, error) {
	return s.view, s.viewErr
}

func newSessionRouter(svc *stubSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewSessionController(svc)

	r := gin.New()
	r.POST("/api/sessions", controller.CreateSessionHandler)

	group := r.Group("/api/session")
	group.Use(func(c *gin.Context) {
		c.Set("session_id", "s1")
	})
	group.GET("", controller.GetSessionHandler)
	group.POST("/prefetch", controller.PrefetchHandler)
	group.POST("/spots/:id/select", controller.SelectSpotHandler)
	group.POST("/alternatives", controller.FindAlternativesHandler)
	group.POST("/modal/close", controller.CloseModalHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestCreateSessionHandler(t *testing.T) {
	svc := &stubSessionService{view: response_models.SessionView{SessionID: "s1"}}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/api/sessions")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Session created", body.Message)
}

func TestGetSessionHandlerExpired(t *testing.T) {
	svc := &stubSessionService{viewErr: utils.ErrSessionNotFound}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/api/session")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Session not found or expired", body.Message)
}

func TestSelectSpotHandlerFailedSlotMessage(t *testing.T) {
	svc := &stubSessionService{view: response_models.SessionView{
		SessionID:      "s1",
		SelectedSpotID: "goryokaku",
		Congestion: map[string]response_models.CongestionSlotView{
			"goryokaku": {State: response_models.SlotFailed, Level: response_models.CongestionUnknown},
		},
	}}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/api/session/spots/goryokaku/select")
	assert.Equal(t, http.StatusOK, w.Code, "a degraded slot is still a successful request")
	assert.Equal(t, "Could not fetch congestion data. Please try again.", body.Message)
}

func TestSelectSpotHandlerReadySlotMessage(t *testing.T) {
	svc := &stubSessionService{view: response_models.SessionView{
		SessionID:      "s1",
		SelectedSpotID: "goryokaku",
		Congestion: map[string]response_models.CongestionSlotView{
			"goryokaku": {State: response_models.SlotReady, Level: response_models.CongestionHigh},
		},
	}}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/api/session/spots/goryokaku/select")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Selection updated", body.Message)
}

func TestFindAlternativesHandlerMessages(t *testing.T) {
	empty := &stubSessionService{view: response_models.SessionView{
		Alternatives: response_models.AlternativesView{
			State: response_models.AlternativesDisplayed,
			Spots: []response_models.AlternativeSpot{},
		},
	}}
	w, body := doRequest(t, newSessionRouter(empty), http.MethodPost, "/api/session/alternatives")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No alternative spots found at the moment.", body.Message)

	found := &stubSessionService{view: response_models.SessionView{
		Alternatives: response_models.AlternativesView{
			State: response_models.AlternativesDisplayed,
			Spots: []response_models.AlternativeSpot{{Name: "Motomachi District", Description: "Historic slopes"}},
		},
	}}
	w, body = doRequest(t, newSessionRouter(found), http.MethodPost, "/api/session/alternatives")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alternatives found", body.Message)
}

func TestFindAlternativesHandlerGatingError(t *testing.T) {
	svc := &stubSessionService{viewErr: utils.ErrAlternativesUnavailable}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/api/session/alternatives")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Alternatives are only available for moderate or high congestion", body.Message)
}

func TestFindAlternativesHandlerRecommendationFailure(t *testing.T) {
	svc := &stubSessionService{viewErr: utils.ErrRecommendationFailed}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/api/session/alternatives")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to recommend alternative spots. Please try again.", body.Message)
}

func TestCloseModalHandler(t *testing.T) {
	svc := &stubSessionService{view: response_models.SessionView{SessionID: "s1"}}
	r := newSessionRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/api/session/modal/close")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Modal closed", body.Message)
}
