package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/models/response_models"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/services"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

func (s *SessionController) CreateSessionHandler(c *gin.Context) {
	resp, err := s.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Session created")
}

func (s *SessionController) GetSessionHandler(c *gin.Context) {
	view, err := s.sessionService.GetView(sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Session fetched")
}

func (s *SessionController) SelectSpotHandler(c *gin.Context) {
	spotID := c.Param("id")
	if spotID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Spot ID is required")
		return
	}

	view, err := s.sessionService.ToggleSelect(c.Request.Context(), sessionID(c), spotID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// A degraded slot still comes back as success; the message doubles as
	// the toast text for the client.
	message := "Selection updated"
	if slot, ok := view.Congestion[spotID]; ok && view.SelectedSpotID == spotID && slot.State == response_models.SlotFailed {
		message = "Could not fetch congestion data. Please try again."
	}
	utils.RespondSuccess(c, view, message)
}

func (s *SessionController) PrefetchHandler(c *gin.Context) {
	view, err := s.sessionService.PrefetchAll(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Congestion overview refreshed")
}

func (s *SessionController) FindAlternativesHandler(c *gin.Context) {
	view, err := s.sessionService.RequestAlternatives(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Alternatives found"
	if len(view.Alternatives.Spots) == 0 {
		message = "No alternative spots found at the moment."
	}
	utils.RespondSuccess(c, view, message)
}

func (s *SessionController) CloseModalHandler(c *gin.Context) {
	view, err := s.sessionService.CloseModal(sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Modal closed")
}
