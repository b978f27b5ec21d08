package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vestora/internal/services"
	"vestora/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// Platform godoc
// @Summary Platform-wide statistics for the landing page
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /stats [get]
func (sc *StatsController) Platform(c *gin.Context) {
	stats, err := sc.statsService.GetPlatformStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

func (sc *StatsController) Mine(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	stats, err := sc.statsService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
