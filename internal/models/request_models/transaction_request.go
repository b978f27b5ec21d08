package request_models

type CreateTransactionRequest struct {
	Type          string `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Reference     string `json:"reference,omitempty"`
}

type ReviewTransactionRequest struct {
	AdminNotes string `json:"admin_notes,omitempty"`
}
