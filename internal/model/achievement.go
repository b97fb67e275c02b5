package model

import "time"

const (
	RequirementWordCount   = "word_count"
	RequirementStreakDays  = "streak_days"
	RequirementQuizCount   = "quiz_count"
	RequirementQuizPerfect = "quiz_perfect"
)

// Achievement başarım tanımı (referans veri)
type Achievement struct {
	BaseModel
	Name             string `gorm:"size:100;unique;not null" json:"name"`
	Description      string `gorm:"size:255" json:"description"`
	IconURL          string `gorm:"size:255" json:"iconUrl"`
	RequirementType  string `gorm:"size:50;not null" json:"requirementType"`
	RequirementValue int    `gorm:"not null" json:"requirementValue"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement kazanılmış başarım; (user_id, achievement_id) unique
type UserAchievement struct {
	BaseModel
	UserID        uint         `gorm:"not null;uniqueIndex:idx_user_achievement" json:"userId"`
	AchievementID uint         `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievementId"`
	Achievement   *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
	EarnedAt      time.Time    `json:"earnedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

// DefaultAchievements başlangıç başarım seti; migrasyon ve admin seed
// endpoint'i aynı listeyi kullanır.
var DefaultAchievements = []Achievement{
	{Name: "First Steps", Description: "Learn your first 10 words.", IconURL: "https://img.icons8.com/color/96/000000/baby-feet.png", RequirementType: RequirementWordCount, RequirementValue: 10},
	{Name: "Word Master", Description: "Learn 100 words.", IconURL: "https://img.icons8.com/color/96/000000/medal-first-place.png", RequirementType: RequirementWordCount, RequirementValue: 100},
	{Name: "Early Bird", Description: "Maintain a 3-day learning streak.", IconURL: "https://img.icons8.com/color/96/000000/sun.png", RequirementType: RequirementStreakDays, RequirementValue: 3},
	{Name: "Unstoppable", Description: "Maintain a 7-day learning streak.", IconURL: "https://img.icons8.com/color/96/000000/fire-element.png", RequirementType: RequirementStreakDays, RequirementValue: 7},
	{Name: "Quiz King", Description: "Complete 5 quizzes with perfect score.", IconURL: "https://img.icons8.com/color/96/000000/crown.png", RequirementType: RequirementQuizPerfect, RequirementValue: 5},
}
