package model

import "time"

const (
	SessionFlashcard  = "flashcard"
	SessionQuiz       = "quiz"
	SessionGrammar    = "grammar"
	SessionVocabulary = "vocabulary"
)

// ValidSessionTypes oturum tipleri
var ValidSessionTypes = []string{SessionFlashcard, SessionQuiz, SessionGrammar, SessionVocabulary}

// LearningSession sınırlı bir aktivite penceresi; süre istemciden gelir
// ya da tamamlama anında completed_at - started_at olarak hesaplanır.
type LearningSession struct {
	BaseModel
	UserID          uint       `gorm:"index;not null" json:"userId"`
	SessionType     string     `gorm:"size:20;not null" json:"sessionType"`
	Score           *int       `json:"score"`
	TotalItems      *int       `json:"totalItems"`
	DurationSeconds *int       `json:"durationSeconds"`
	StartedAt       time.Time  `gorm:"index;not null" json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}
