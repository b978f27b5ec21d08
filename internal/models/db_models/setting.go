package db_models

// Setting is a key/value platform configuration row. Seeded keys:
// success_rate (marketing stat, default 98.00) and referral_rate
// (default commission percent, 10.00).
type Setting struct {
	BaseModel
	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	SettingSuccessRate  = "success_rate"
	SettingReferralRate = "referral_rate"
)
