package repository

import (
	"talkify_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) ListAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Order("requirement_value ASC, id ASC").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) ListEarnedByUser(userID uint) ([]model.UserAchievement, error) {
	var earned []model.UserAchievement
	err := r.DB.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&earned).Error
	return earned, err
}

// Award idempotent; aynı başarım ikinci kez verilirse unique kısıt
// sayesinde sessizce atlanır.
func (r *AchievementRepository) Award(ua *model.UserAchievement) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(ua).Error
}
