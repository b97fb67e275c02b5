package service

import (
	"errors"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	WordRepo     *repository.WordRepository
	SessionRepo  *repository.SessionRepository
	ResultRepo   *repository.TestResultRepository
	Gamification *GamificationService

	Now func() time.Time
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	wordRepo *repository.WordRepository,
	sessionRepo *repository.SessionRepository,
	resultRepo *repository.TestResultRepository,
	gamification *GamificationService,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		WordRepo:     wordRepo,
		SessionRepo:  sessionRepo,
		ResultRepo:   resultRepo,
		Gamification: gamification,
		Now:          time.Now,
	}
}

type RecordReviewRequest struct {
	WordID  uint   `json:"word_id" binding:"required"`
	Learned bool   `json:"learned"`
	Correct bool   `json:"correct"`
	Note    string `json:"note"`
}

type RecordReviewResponse struct {
	Progress  *model.UserProgress `json:"progress"`
	Streak    *StreakStatus       `json:"streak"`
	NewBadges []model.Achievement `json:"newAchievements,omitempty"`
}

// RecordReview tek bir tekrar olayını işler. Sayaç artışları veritabanında
// atomik upsert ile yapılır, güncel satır sonradan okunur.
func (s *ProgressService) RecordReview(userID uint, req *RecordReviewRequest) (*RecordReviewResponse, error) {
	if _, err := s.WordRepo.FindByID(req.WordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWordNotFound
		}
		return nil, err
	}

	now := s.Now()
	if err := s.ProgressRepo.UpsertReview(userID, req.WordID, req.Learned, req.Correct, now); err != nil {
		return nil, err
	}
	if req.Note != "" {
		if err := s.ProgressRepo.UpdateNote(userID, req.WordID, req.Note); err != nil {
			return nil, err
		}
	}

	progress, err := s.ProgressRepo.FindByUserAndWord(userID, req.WordID)
	if err != nil {
		return nil, err
	}

	streak, err := s.Gamification.LogActivity(userID)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.Gamification.CheckAchievements(userID)
	if err != nil {
		return nil, err
	}

	return &RecordReviewResponse{Progress: progress, Streak: streak, NewBadges: unlocked}, nil
}

func (s *ProgressService) ListProgress(userID uint, learned *bool, page, perPage int) ([]model.UserProgress, *util.Pagination, error) {
	var rows []model.UserProgress
	pagination, err := util.Paginate(s.ProgressRepo.QueryByUser(userID, learned), page, perPage, &rows)
	if err != nil {
		return nil, nil, err
	}
	return rows, pagination, nil
}

type ProgressStats struct {
	TotalWords    int64    `json:"totalWords"`
	LearnedWords  int64    `json:"learnedWords"`
	ReviewedWords int64    `json:"reviewedWords"`
	TotalReviews  int64    `json:"totalReviews"`
	TotalCorrect  int64    `json:"totalCorrect"`
	Accuracy      *float64 `json:"accuracy"`
	StreakCount   int      `json:"streakCount"`
	DailyGoal     int      `json:"dailyGoal"`
}

func (s *ProgressService) Stats(userID uint) (*ProgressStats, error) {
	user, err := s.Gamification.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	totalWords, err := s.WordRepo.Count()
	if err != nil {
		return nil, err
	}
	learned, err := s.ProgressRepo.CountLearned(userID)
	if err != nil {
		return nil, err
	}
	reviewed, err := s.ProgressRepo.CountReviewed(userID)
	if err != nil {
		return nil, err
	}
	totals, err := s.ProgressRepo.TotalsByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &ProgressStats{
		TotalWords:    totalWords,
		LearnedWords:  learned,
		ReviewedWords: reviewed,
		TotalReviews:  totals.TotalReviews,
		TotalCorrect:  totals.TotalCorrect,
		StreakCount:   user.StreakCount,
		DailyGoal:     user.DailyGoal,
	}
	if totals.TotalReviews > 0 {
		accuracy := float64(totals.TotalCorrect) / float64(totals.TotalReviews) * 100
		stats.Accuracy = &accuracy
	}
	return stats, nil
}

type DailyProgress struct {
	Date          string `json:"date"`
	ReviewedToday int64  `json:"reviewedToday"`
	DailyGoal     int    `json:"dailyGoal"`
	GoalReached   bool   `json:"goalReached"`
}

// Daily bugünün hedef durumu; bugün gözden geçirilen kelime sayısına bakar
func (s *ProgressService) Daily(userID uint) (*DailyProgress, error) {
	user, err := s.Gamification.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	dayStart := truncateToDay(s.Now())
	var reviewedToday int64
	err = s.ProgressRepo.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND last_reviewed >= ?", userID, dayStart).
		Count(&reviewedToday).Error
	if err != nil {
		return nil, err
	}

	return &DailyProgress{
		Date:          dayStart.Format(util.DateFormat),
		ReviewedToday: reviewedToday,
		DailyGoal:     user.DailyGoal,
		GoalReached:   reviewedToday >= int64(user.DailyGoal),
	}, nil
}

type StartSessionRequest struct {
	SessionType string `json:"session_type" binding:"required"`
}

func (s *ProgressService) StartSession(userID uint, req *StartSessionRequest) (*model.LearningSession, error) {
	valid := false
	for _, t := range model.ValidSessionTypes {
		if req.SessionType == t {
			valid = true
			break
		}
	}
	if !valid {
		return nil, util.ErrInvalidInput
	}

	session := &model.LearningSession{
		UserID:      userID,
		SessionType: req.SessionType,
		StartedAt:   s.Now(),
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

type CompleteSessionRequest struct {
	Score           *int `json:"score"`
	TotalItems      *int `json:"total_items"`
	DurationSeconds *int `json:"duration_seconds"`
}

// CompleteSession oturumu kapatır; süre verilmemişse başlangıçtan hesaplanır
func (s *ProgressService) CompleteSession(userID, sessionID uint, req *CompleteSessionRequest) (*model.LearningSession, error) {
	session, err := s.SessionRepo.FindByIDAndUser(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	now := s.Now()
	session.CompletedAt = &now
	session.Score = req.Score
	session.TotalItems = req.TotalItems
	if req.DurationSeconds != nil {
		session.DurationSeconds = req.DurationSeconds
	} else {
		duration := int(now.Sub(session.StartedAt).Seconds())
		session.DurationSeconds = &duration
	}

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}

	if _, err := s.Gamification.LogActivity(userID); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ProgressService) ListSessions(userID uint, sessionType string, page, perPage int) ([]model.LearningSession, *util.Pagination, error) {
	var sessions []model.LearningSession
	pagination, err := util.Paginate(s.SessionRepo.QueryByUser(userID, sessionType), page, perPage, &sessions)
	if err != nil {
		return nil, nil, err
	}
	return sessions, pagination, nil
}
