package repository

import (
	"talkify_backend/internal/model"

	"gorm.io/gorm"
)

type TestResultRepository struct {
	DB *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{DB: db}
}

func (r *TestResultRepository) Create(result *model.TestResult) error {
	return r.DB.Create(result).Error
}

// QueryByUser en yeni deneme önce
func (r *TestResultRepository) QueryByUser(userID uint) *gorm.DB {
	return r.DB.Model(&model.TestResult{}).
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC")
}

func (r *TestResultRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountPerfectByUser tam puanlı deneme sayısı
func (r *TestResultRepository) CountPerfectByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestResult{}).
		Where("user_id = ? AND score = total_questions", userID).
		Count(&count).Error
	return count, err
}

type ResultStats struct {
	TotalTests     int64    `json:"totalTests"`
	AveragePercent *float64 `json:"averagePercent"`
	BestPercent    *float64 `json:"bestPercent"`
}

func (r *TestResultRepository) StatsByUser(userID uint) (*ResultStats, error) {
	var stats ResultStats
	err := r.DB.Model(&model.TestResult{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS total_tests, AVG(percentage) AS average_percent, MAX(percentage) AS best_percent").
		Scan(&stats).Error
	return &stats, err
}
