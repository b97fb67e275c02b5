package repository

import (
	"talkify_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.LearningSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByIDAndUser(id, userID uint) (*model.LearningSession, error) {
	var session model.LearningSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

func (r *SessionRepository) Update(session *model.LearningSession) error {
	return r.DB.Save(session).Error
}

// QueryByUser en yeni oturum önce
func (r *SessionRepository) QueryByUser(userID uint, sessionType string) *gorm.DB {
	query := r.DB.Model(&model.LearningSession{}).
		Where("user_id = ?", userID).
		Order("started_at DESC, id DESC")
	if sessionType != "" {
		query = query.Where("session_type = ?", sessionType)
	}
	return query
}
