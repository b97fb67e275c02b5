package repository

import (
	"time"

	"talkify_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// UpsertReview (user_id, word_id) satırını atomik günceller. Sayaçlar
// veritabanı tarafında artırılır; eş zamanlı istekler kaybolmaz.
func (r *ProgressRepository) UpsertReview(userID, wordID uint, learned, correct bool, now time.Time) error {
	row := model.UserProgress{
		UserID:       userID,
		WordID:       wordID,
		Learned:      learned,
		ReviewCount:  1,
		LastReviewed: &now,
	}
	if correct {
		row.CorrectCount = 1
	}

	assignments := map[string]interface{}{
		"learned":       learned,
		"review_count":  gorm.Expr("review_count + 1"),
		"last_reviewed": now,
		"updated_at":    now,
	}
	if correct {
		assignments["correct_count"] = gorm.Expr("correct_count + 1")
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&row).Error
}

func (r *ProgressRepository) FindByUserAndWord(userID, wordID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Preload("Word").
		Where("user_id = ? AND word_id = ?", userID, wordID).
		First(&progress).Error
	return &progress, err
}

// QueryByUser learned nil ise filtre uygulanmaz
func (r *ProgressRepository) QueryByUser(userID uint, learned *bool) *gorm.DB {
	query := r.DB.Model(&model.UserProgress{}).
		Preload("Word").
		Where("user_id = ?", userID).
		Order("word_id ASC")
	if learned != nil {
		query = query.Where("learned = ?", *learned)
	}
	return query
}

func (r *ProgressRepository) UpdateNote(userID, wordID uint, note string) error {
	return r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		Update("note", note).Error
}

func (r *ProgressRepository) CountLearned(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND learned = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountReviewed(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

type ReviewTotals struct {
	TotalReviews int64 `json:"totalReviews"`
	TotalCorrect int64 `json:"totalCorrect"`
}

func (r *ProgressRepository) TotalsByUser(userID uint) (*ReviewTotals, error) {
	var totals ReviewTotals
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(review_count), 0) AS total_reviews, COALESCE(SUM(correct_count), 0) AS total_correct").
		Scan(&totals).Error
	return &totals, err
}
