package service

import (
	"errors"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"
	"talkify_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminService struct {
	DB              *gorm.DB
	UserRepo        *repository.UserRepository
	WordRepo        *repository.WordRepository
	QuizRepo        *repository.QuizRepository
	GrammarRepo     *repository.GrammarRepository
	ResultRepo      *repository.TestResultRepository
	ProgressRepo    *repository.ProgressRepository
	AchievementRepo *repository.AchievementRepository

	Now func() time.Time
}

func NewAdminService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	wordRepo *repository.WordRepository,
	quizRepo *repository.QuizRepository,
	grammarRepo *repository.GrammarRepository,
	resultRepo *repository.TestResultRepository,
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
) *AdminService {
	return &AdminService{
		DB:              db,
		UserRepo:        userRepo,
		WordRepo:        wordRepo,
		QuizRepo:        quizRepo,
		GrammarRepo:     grammarRepo,
		ResultRepo:      resultRepo,
		ProgressRepo:    progressRepo,
		AchievementRepo: achievementRepo,
		Now:             time.Now,
	}
}

type UserStats struct {
	Total          int64 `json:"total"`
	NewToday       int64 `json:"newToday"`
	NewThisWeek    int64 `json:"newThisWeek"`
	ActiveThisWeek int64 `json:"activeThisWeek"`
}

type ContentStats struct {
	Words   int64 `json:"words"`
	Quizzes int64 `json:"quizzes"`
	Grammar int64 `json:"grammar"`
}

type LearningStats struct {
	TestResults  int64 `json:"testResults"`
	WordsLearned int64 `json:"wordsLearned"`
	Sessions     int64 `json:"sessions"`
}

type DashboardStats struct {
	Users             UserStats          `json:"users"`
	Content           ContentStats       `json:"content"`
	Learning          LearningStats      `json:"learning"`
	LevelDistribution map[string]int64   `json:"levelDistribution"`
	RecentUsers       []model.User       `json:"recentUsers"`
	RecentResults     []model.TestResult `json:"recentResults"`
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{
		LevelDistribution: make(map[string]int64),
	}

	today := truncateToDay(s.Now())
	weekAgo := today.AddDate(0, 0, -7)

	var err error
	if stats.Users.Total, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&model.User{}).Where("created_at >= ?", today).Count(&stats.Users.NewToday).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&model.User{}).Where("created_at >= ?", weekAgo).Count(&stats.Users.NewThisWeek).Error; err != nil {
		return nil, err
	}
	if stats.Users.ActiveThisWeek, err = s.UserRepo.CountActiveSince(weekAgo); err != nil {
		return nil, err
	}

	if stats.Content.Words, err = s.WordRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Content.Quizzes, err = s.QuizRepo.Count(); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&model.GrammarContent{}).Count(&stats.Content.Grammar).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&model.TestResult{}).Count(&stats.Learning.TestResults).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&model.UserProgress{}).Where("learned = ?", true).Count(&stats.Learning.WordsLearned).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&model.LearningSession{}).Count(&stats.Learning.Sessions).Error; err != nil {
		return nil, err
	}

	var distribution []struct {
		Level string
		Count int64
	}
	if err := s.DB.Model(&model.Word{}).
		Select("level, COUNT(id) AS count").
		Group("level").
		Scan(&distribution).Error; err != nil {
		return nil, err
	}
	for _, d := range distribution {
		stats.LevelDistribution[d.Level] = d.Count
	}

	if err := s.DB.Model(&model.User{}).Order("created_at DESC").Limit(5).Find(&stats.RecentUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&model.TestResult{}).Order("completed_at DESC").Limit(5).Find(&stats.RecentResults).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

type AdminUserView struct {
	model.User
	TestCount    int64 `json:"testCount"`
	WordsLearned int64 `json:"wordsLearned"`
}

func (s *AdminService) ListUsers(search string, page, perPage int) ([]AdminUserView, *util.Pagination, error) {
	query := s.UserRepo.Query(search).Order("created_at DESC")

	var users []model.User
	pagination, err := util.Paginate(query, page, perPage, &users)
	if err != nil {
		return nil, nil, err
	}

	views := make([]AdminUserView, 0, len(users))
	for _, u := range users {
		testCount, err := s.ResultRepo.CountByUser(u.ID)
		if err != nil {
			return nil, nil, err
		}
		learned, err := s.ProgressRepo.CountLearned(u.ID)
		if err != nil {
			return nil, nil, err
		}
		views = append(views, AdminUserView{User: u, TestCount: testCount, WordsLearned: learned})
	}
	return views, pagination, nil
}

type AdminUserDetail struct {
	model.User
	WordsLearned  int64              `json:"wordsLearned"`
	RecentResults []model.TestResult `json:"recentResults"`
}

func (s *AdminService) GetUser(userID uint) (*AdminUserDetail, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	learned, err := s.ProgressRepo.CountLearned(userID)
	if err != nil {
		return nil, err
	}

	var recent []model.TestResult
	if err := s.ResultRepo.QueryByUser(userID).Limit(10).Find(&recent).Error; err != nil {
		return nil, err
	}

	return &AdminUserDetail{User: *user, WordsLearned: learned, RecentResults: recent}, nil
}

// DeleteUser kullanıcıyı ve sahip olduğu tüm kayıtları tek transaction'da siler
func (s *AdminService) DeleteUser(userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var conversationIDs []string
		if err := tx.Model(&model.Conversation{}).
			Where("user_id = ?", userID).
			Pluck("id", &conversationIDs).Error; err != nil {
			return err
		}
		if len(conversationIDs) > 0 {
			if err := tx.Where("conversation_id IN ?", conversationIDs).Delete(&model.ChatMessage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&model.Conversation{}).Error; err != nil {
				return err
			}
		}

		for _, m := range []interface{}{
			&model.UserProgress{},
			&model.TestResult{},
			&model.LearningSession{},
			&model.UserAchievement{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.User{}, userID).Error
	})
	if err != nil {
		return err
	}

	logger.Log.Info("Admin deleted user", zap.String("email", user.Email))
	return nil
}

// ListWordsAdmin en yeni kelime önce
func (s *AdminService) ListWordsAdmin(level, category, search string, page, perPage int) ([]model.Word, *util.Pagination, error) {
	if level != "" {
		if normalized, ok := model.NormalizeLevel(level); ok {
			level = string(normalized)
		} else {
			level = ""
		}
	}

	query := s.WordRepo.Query(level, category, search).Order("id DESC")

	var words []model.Word
	pagination, err := util.Paginate(query, page, perPage, &words)
	if err != nil {
		return nil, nil, err
	}
	return words, pagination, nil
}

// SeedAchievements eksik başarım tanımlarını tamamlar; mevcutlara dokunmaz
func (s *AdminService) SeedAchievements() (int, error) {
	created := 0
	for _, a := range model.DefaultAchievements {
		var count int64
		if err := s.DB.Model(&model.Achievement{}).Where("name = ?", a.Name).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := s.DB.Create(&a).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *AdminService) ListAchievements() ([]model.Achievement, error) {
	return s.AchievementRepo.ListAll()
}
