package db_models

// BankAccount holds the platform's own deposit account details shown to
// users on the deposit instructions page.
type BankAccount struct {
	BaseModel
	BankName      string `gorm:"size:100;not null" json:"bank_name"`
	AccountTitle  string `gorm:"size:100;not null" json:"account_title"`
	AccountNumber string `gorm:"size:50;not null" json:"account_number"`
	Active        bool   `gorm:"default:true;index" json:"active"`
}

func (BankAccount) TableName() string {
	return "bank_accounts"
}
