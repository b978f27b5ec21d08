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

type CalculatorController struct {
	calculatorService services.CalculatorServiceInterface
}

func NewCalculatorController(calculatorService services.CalculatorServiceInterface) *CalculatorController {
	return &CalculatorController{
		calculatorService: calculatorService,
	}
}

// Calculate godoc
// @Summary Project returns for an amount under a plan
// @Description Pure projection, nothing is persisted
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body request_models.CalculateRequest true "Calculation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /calculate [post]
func (cc *CalculatorController) Calculate(c *gin.Context) {
	var req request_models.CalculateRequest
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

	calculation, err := cc.calculatorService.Calculate(c.Request.Context(), amount, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, calculation, "Calculation successful")
}
