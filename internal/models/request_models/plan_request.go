package request_models

type PlanRequest struct {
	Name            string  `json:"name" binding:"required,max=100"`
	Description     *string `json:"description,omitempty"`
	ROI             string  `json:"roi" binding:"required"`
	DurationDays    int     `json:"duration_days" binding:"required,gt=0"`
	MinInvestment   string  `json:"min_investment" binding:"required"`
	MaxInvestment   *string `json:"max_investment,omitempty"`
	PrincipalReturn bool    `json:"principal_return"`
	Bonus           bool    `json:"bonus"`
}
