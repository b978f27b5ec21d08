package request_models

type BankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=100"`
	AccountTitle  string `json:"account_title" binding:"required,max=100"`
	AccountNumber string `json:"account_number" binding:"required,max=50"`
	Active        *bool  `json:"active,omitempty"`
}
