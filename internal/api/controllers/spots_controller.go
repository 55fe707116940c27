package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FRUITS-CAPRESE/Oidemase/internal/services"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

type SpotsController struct {
	spotService services.SpotServiceInterface
}

func NewSpotsController(spotService services.SpotServiceInterface) *SpotsController {
	return &SpotsController{
		spotService: spotService,
	}
}

func (s *SpotsController) ListSpotsHandler(c *gin.Context) {
	spots, err := s.spotService.ListSpots(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, spots, "Spots fetched successfully")
}

func (s *SpotsController) GetSpotByIdHandler(c *gin.Context) {
	spotID := c.Param("id")
	if spotID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Spot ID is required")
		return
	}

	spot, err := s.spotService.GetSpotByID(c.Request.Context(), spotID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, spot, "Spot fetched successfully")
}
