package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vestora/internal/services"
	"vestora/pkg/utils"
)

type ReferralController struct {
	referralService services.ReferralServiceInterface
}

func NewReferralController(referralService services.ReferralServiceInterface) *ReferralController {
	return &ReferralController{
		referralService: referralService,
	}
}

func (rc *ReferralController) ListMine(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	referrals, err := rc.referralService.ListForReferrer(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, referrals, "Referrals fetched successfully")
}
