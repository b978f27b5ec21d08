package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vestora/internal/models/request_models"
	"vestora/internal/services"
	"vestora/pkg/utils"
)

type BankController struct {
	bankService services.BankServiceInterface
}

func NewBankController(bankService services.BankServiceInterface) *BankController {
	return &BankController{
		bankService: bankService,
	}
}

// ListActive returns the deposit accounts shown on the payment
// instructions page.
func (bc *BankController) ListActive(c *gin.Context) {
	banks, err := bc.bankService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, banks, "Bank accounts fetched successfully")
}

func (bc *BankController) ListAll(c *gin.Context) {
	banks, err := bc.bankService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, banks, "Bank accounts fetched successfully")
}

func (bc *BankController) Create(c *gin.Context) {
	var req request_models.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bank, err := bc.bankService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, bank, "Bank account created successfully")
}

func (bc *BankController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid bank account id")
		return
	}

	var req request_models.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bank, err := bc.bankService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bank, "Bank account updated successfully")
}

func (bc *BankController) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid bank account id")
		return
	}

	bank, err := bc.bankService.Deactivate(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bank, "Bank account deactivated successfully")
}
