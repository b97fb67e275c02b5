package model

import "time"

// UserProgress kullanıcı başına kelime öğrenme durumu.
// (user_id, word_id) üzerinde unique kısıt vardır; eş zamanlı review
// istekleri upsert ile tek satıra düşer.
type UserProgress struct {
	BaseModel
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_word" json:"userId"`
	WordID       uint       `gorm:"not null;uniqueIndex:idx_user_word" json:"wordId"`
	Word         *Word      `gorm:"foreignKey:WordID" json:"word,omitempty"`
	Learned      bool       `gorm:"default:false" json:"learned"`
	ReviewCount  int        `gorm:"default:0" json:"reviewCount"`
	CorrectCount int        `gorm:"default:0" json:"correctCount"`
	LastReviewed *time.Time `json:"lastReviewed"`
	Note         string     `gorm:"type:text" json:"note"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
