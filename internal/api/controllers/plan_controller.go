package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vestora/internal/models/request_models"
	"vestora/internal/services"
	"vestora/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// ListActive godoc
// @Summary List active investment plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) ListActive(c *gin.Context) {
	plans, err := p.planService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PlanController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := p.planService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

func (p *PlanController) ListAll(c *gin.Context) {
	plans, err := p.planService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PlanController) Create(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Plan created successfully")
}

func (p *PlanController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

func (p *PlanController) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := p.planService.Deactivate(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan deactivated successfully")
}
