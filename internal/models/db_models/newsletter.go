package db_models

type NewsletterStatus string

const (
	NewsletterStatusActive       NewsletterStatus = "active"
	NewsletterStatusUnsubscribed NewsletterStatus = "unsubscribed"
)

type Newsletter struct {
	BaseModel
	Email          string           `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Status         NewsletterStatus `gorm:"size:20;default:'active';index" json:"status"`
	UnsubscribedAt *int64           `json:"unsubscribed_at,omitempty"`
}

func (Newsletter) TableName() string {
	return "newsletters"
}
