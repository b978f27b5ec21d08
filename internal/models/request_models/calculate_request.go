package request_models

type CalculateRequest struct {
	Amount string `json:"amount" binding:"required"`
	PlanID string `json:"plan_id" binding:"required"`
}
