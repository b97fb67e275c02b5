package model

import (
	"strings"
	"time"
)

type LanguageLevel string

const (
	LevelA1 LanguageLevel = "A1"
	LevelA2 LanguageLevel = "A2"
	LevelB1 LanguageLevel = "B1"
	LevelB2 LanguageLevel = "B2"
	LevelC1 LanguageLevel = "C1"
	LevelC2 LanguageLevel = "C2"
)

// ValidLevels CEFR dil seviyeleri
var ValidLevels = []LanguageLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// NormalizeLevel trims and uppercases the input before matching.
func NormalizeLevel(level string) (LanguageLevel, bool) {
	level = strings.ToUpper(strings.TrimSpace(level))
	for _, l := range ValidLevels {
		if string(l) == level {
			return l, true
		}
	}
	return "", false
}

// swagger:model User
type User struct {
	BaseModel
	Username         string        `gorm:"size:80" json:"username"`
	Email            string        `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash     string        `gorm:"size:128;not null" json:"-"`
	FirebaseUID      *string       `gorm:"size:128;unique" json:"firebaseUid,omitempty"`
	LanguageLevel    LanguageLevel `gorm:"size:10;default:'A1'" json:"languageLevel"`
	DailyGoal        int           `gorm:"default:10" json:"dailyGoal"`
	AvatarURL        string        `gorm:"size:255" json:"avatarUrl"`
	IsAdmin          bool          `gorm:"default:false" json:"isAdmin"`
	StreakCount      int           `gorm:"default:0" json:"streakCount"`
	LastActivityDate *time.Time    `gorm:"type:date" json:"lastActivityDate"`
	LastLogin        *time.Time    `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
