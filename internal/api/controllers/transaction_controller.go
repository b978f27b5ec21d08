package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
	"vestora/internal/models/request_models"
	"vestora/internal/services"
	"vestora/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionController(transactionService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// CreateRequest godoc
// @Summary Submit a deposit or withdrawal request
// @Description The request stays pending until an operator reviews it
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /transactions [post]
func (tc *TransactionController) CreateRequest(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	txn, err := tc.transactionService.CreateRequest(
		c.Request.Context(),
		userID,
		db_models.TransactionType(req.Type),
		amount,
		req.PaymentMethod,
		req.Reference,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, txn, "Transaction request submitted successfully")
}

func (tc *TransactionController) ListMine(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	txns, err := tc.transactionService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Transactions fetched successfully")
}

// ListPending returns pending requests for operator review, optionally
// filtered by ?type=deposit|withdrawal.
func (tc *TransactionController) ListPending(c *gin.Context) {
	txnType := db_models.TransactionType(c.DefaultQuery("type", string(db_models.TxnTypeDeposit)))
	if txnType != db_models.TxnTypeDeposit && txnType != db_models.TxnTypeWithdrawal {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction type")
		return
	}

	txns, err := tc.transactionService.ListPendingByType(c.Request.Context(), txnType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Pending transactions fetched successfully")
}

func (tc *TransactionController) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req request_models.ReviewTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := tc.transactionService.Approve(c.Request.Context(), id, req.AdminNotes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction approved successfully")
}

func (tc *TransactionController) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req request_models.ReviewTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := tc.transactionService.Reject(c.Request.Context(), id, req.AdminNotes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction rejected successfully")
}
