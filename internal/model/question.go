package model

const (
	QuestionTypeBinary       = "binary"
	QuestionTypeSingleChoice = "single_choice"
)

// Question is one prompt shown to a respondent. Binary questions carry the
// implicit agree/disagree poles and accept swipe input; single-choice questions
// list their options explicitly.
// swagger:model Question
type Question struct {
	BaseModel
	Text         string           `gorm:"size:500;not null" json:"text"`
	QuestionType string           `gorm:"size:20;not null" json:"type"` // binary, single_choice
	Required     bool             `gorm:"default:true" json:"required"`
	Active       bool             `gorm:"default:true;index" json:"active"`
	SortOrder    int              `gorm:"default:0" json:"sortOrder"`
	Options      []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Label      string `gorm:"size:255;not null" json:"label"`
	SortOrder  int    `gorm:"default:0" json:"sortOrder"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
