package request_models

type CreateInvestmentRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type CancelInvestmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
