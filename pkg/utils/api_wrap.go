package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer errors onto HTTP responses.
// Validation and not-found errors are surfaced verbatim; anything
// unrecognized is logged and masked as an internal error.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInvestmentNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrBankNotFound),
		errors.Is(err, ErrSettingNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrAmountOutOfBounds),
		errors.Is(err, ErrInvalidPlanTerms),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInvalidReferralCode):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrUsernameAlreadyExists),
		errors.Is(err, ErrAlreadySubscribed):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
