package model

import "time"

// TestResult tek bir quiz denemesinin değişmez kaydı (append-only)
type TestResult struct {
	BaseModel
	UserID         uint      `gorm:"index;not null" json:"userId"`
	QuizID         *uint     `gorm:"index" json:"quizId,omitempty"`
	TestType       string    `gorm:"size:50;default:'quiz'" json:"testType"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	Percentage     float64   `gorm:"not null" json:"percentage"`
	CompletedAt    time.Time `gorm:"index" json:"completedAt"`
}

func (TestResult) TableName() string {
	return "test_results"
}
