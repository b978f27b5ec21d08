package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vestora/internal/models/request_models"
	"vestora/internal/services"
	"vestora/pkg/utils"
)

type SettingController struct {
	settingService services.SettingServiceInterface
}

func NewSettingController(settingService services.SettingServiceInterface) *SettingController {
	return &SettingController{
		settingService: settingService,
	}
}

func (sc *SettingController) Get(c *gin.Context) {
	setting, err := sc.settingService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, setting, "Setting fetched successfully")
}

func (sc *SettingController) Update(c *gin.Context) {
	var req request_models.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := sc.settingService.Update(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Setting updated successfully")
}
