package request_models

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
