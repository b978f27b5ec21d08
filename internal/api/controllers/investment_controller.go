package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/request_models"
	"vestora/internal/services"
	"vestora/pkg/utils"
)

type InvestmentController struct {
	investmentService services.InvestmentServiceInterface
}

func NewInvestmentController(investmentService services.InvestmentServiceInterface) *InvestmentController {
	return &InvestmentController{
		investmentService: investmentService,
	}
}

// Create godoc
// @Summary Open an investment
// @Description Debit the user's balance and open an investment under a plan
// @Tags Investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateInvestmentRequest true "Investment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /investments [post]
func (ic *InvestmentController) Create(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	investment, err := ic.investmentService.Create(c.Request.Context(), userID, planID, amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, investment, "Investment created successfully")
}

func (ic *InvestmentController) ListMine(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	investments, err := ic.investmentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, investments, "Investments fetched successfully")
}

func (ic *InvestmentController) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid investment id")
		return
	}

	var req request_models.CancelInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	investment, err := ic.investmentService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, investment, "Investment cancelled successfully")
}
