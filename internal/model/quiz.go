package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Level       string         `gorm:"size:10;index" json:"level"`
	Category    string         `gorm:"size:50;index" json:"category"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	Questions   []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion çoktan seçmeli soru; CorrectAnswer, Options dizisine 0 tabanlı indekstir
type QuizQuestion struct {
	BaseModel
	QuizID        uint     `gorm:"index;not null" json:"quizId"`
	Question      string   `gorm:"type:text;not null" json:"question"`
	Options       []string `gorm:"serializer:json;type:text" json:"options"`
	CorrectAnswer int      `gorm:"not null;default:0" json:"correctAnswer"`
	Explanation   string   `gorm:"type:text" json:"explanation"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
