package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vestora/internal/models/request_models"
	"vestora/internal/services"
	"vestora/pkg/utils"
)

type NewsletterController struct {
	newsletterService services.NewsletterServiceInterface
}

func NewNewsletterController(newsletterService services.NewsletterServiceInterface) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
	}
}

func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := nc.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, sub, "Subscribed successfully")
}

func (nc *NewsletterController) Unsubscribe(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := nc.newsletterService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Unsubscribed successfully")
}

func (nc *NewsletterController) ListActive(c *gin.Context) {
	subs, err := nc.newsletterService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "Subscribers fetched successfully")
}
