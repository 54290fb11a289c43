package model

import "time"

// Lead is one completed submission: contact fields, the consent disclosure
// frozen as shown at submission time, and best-effort requester metadata.
// Rows are written once and never updated or deleted.
// swagger:model Lead
type Lead struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	School      string       `gorm:"size:255;not null" json:"school"`
	Phone       *string      `gorm:"size:50" json:"phone,omitempty"`
	Email       *string      `gorm:"size:255" json:"email,omitempty"`
	Consent     bool         `gorm:"not null" json:"consent"`
	ConsentText string       `gorm:"type:text" json:"consentText"`
	ConsentedAt time.Time    `json:"consentedAt"`
	IPAddress   *string      `gorm:"size:45" json:"ipAddress,omitempty"`
	UserAgent   *string      `gorm:"type:text" json:"userAgent,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	Answers     []LeadAnswer `gorm:"foreignKey:LeadID" json:"answers,omitempty"`
}

func (Lead) TableName() string {
	return "leads"
}

// swagger:model LeadAnswer
type LeadAnswer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LeadID      uint      `gorm:"index;not null;type:bigint unsigned" json:"leadId"`
	QuestionID  string    `gorm:"size:50;not null" json:"questionId"`
	AnswerValue string    `gorm:"type:text" json:"answerValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (LeadAnswer) TableName() string {
	return "lead_answers"
}
