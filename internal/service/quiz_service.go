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

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	ResultRepo   *repository.TestResultRepository
	Gamification *GamificationService

	Now func() time.Time
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	resultRepo *repository.TestResultRepository,
	gamification *GamificationService,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		ResultRepo:   resultRepo,
		Gamification: gamification,
		Now:          time.Now,
	}
}

type QuizFilter struct {
	Level    string
	Category string
	Search   string
}

// ListQuizzes herkese açık liste; yalnızca aktif quizler, soru gövdeleri hariç
func (s *QuizService) ListQuizzes(filter QuizFilter, page, perPage int) ([]model.Quiz, *util.Pagination, error) {
	if filter.Level != "" {
		if level, ok := model.NormalizeLevel(filter.Level); ok {
			filter.Level = string(level)
		} else {
			filter.Level = ""
		}
	}

	query := s.QuizRepo.Query(filter.Level, filter.Category, filter.Search, true).Order("id ASC")

	var quizzes []model.Quiz
	pagination, err := util.Paginate(query, page, perPage, &quizzes)
	if err != nil {
		return nil, nil, err
	}
	return quizzes, pagination, nil
}

// ListAllQuizzes admin görünümü; pasifler dahil, en yeni önce
func (s *QuizService) ListAllQuizzes(page, perPage int) ([]model.Quiz, *util.Pagination, error) {
	query := s.QuizRepo.DB.Model(&model.Quiz{}).Order("id DESC")

	var quizzes []model.Quiz
	pagination, err := util.Paginate(query, page, perPage, &quizzes)
	if err != nil {
		return nil, nil, err
	}
	return quizzes, pagination, nil
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

// QuestionView sınav modunda doğru cevap ve açıklama gizlenir
type QuestionView struct {
	ID            uint     `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

func (s *QuizService) GetQuestions(quizID uint, examMode bool) ([]QuestionView, error) {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		view := QuestionView{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		}
		if !examMode {
			answer := q.CorrectAnswer
			view.CorrectAnswer = &answer
			view.Explanation = q.Explanation
		}
		views = append(views, view)
	}
	return views, nil
}

type SubmitResultRequest struct {
	QuizID         *uint  `json:"quiz_id"`
	TestType       string `json:"test_type"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

type SubmitResultResponse struct {
	Result    *model.TestResult   `json:"result"`
	Streak    *StreakStatus       `json:"streak"`
	NewBadges []model.Achievement `json:"newAchievements,omitempty"`
}

// SubmitResult puanı doğrular, sonucu değişmez kayıt olarak ekler, günün
// aktivitesini loglar ve başarımları değerlendirir.
func (s *QuizService) SubmitResult(userID uint, req *SubmitResultRequest) (*SubmitResultResponse, error) {
	if req.TotalQuestions < 1 || req.Score < 0 || req.Score > req.TotalQuestions {
		return nil, util.ErrInvalidInput
	}

	if req.QuizID != nil {
		if _, err := s.GetQuiz(*req.QuizID); err != nil {
			return nil, err
		}
	}

	testType := req.TestType
	if testType == "" {
		testType = "quiz"
	}

	result := &model.TestResult{
		UserID:         userID,
		QuizID:         req.QuizID,
		TestType:       testType,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     float64(req.Score) / float64(req.TotalQuestions) * 100,
		CompletedAt:    s.Now(),
	}
	if err := s.ResultRepo.Create(result); err != nil {
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

	return &SubmitResultResponse{Result: result, Streak: streak, NewBadges: unlocked}, nil
}

type LegacyResult struct {
	Score          int        `json:"score"`
	TotalQuestions int        `json:"total_questions"`
	Percentage     *float64   `json:"percentage"`
	TestType       string     `json:"test_type"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// SyncResults eski istemcilerin biriktirdiği sonuçları toplu aktarır.
// İstemcinin yolladığı yüzdeye güvenilir; yoksa yeniden hesaplanır.
// Geçersiz kayıtlar uyarıyla atlanır; kalıcılaştırma hatası tüm partiyi
// geri alır, kısmi parti asla görünmez.
func (s *QuizService) SyncResults(userID uint, items []LegacyResult) (int, error) {
	synced := 0
	err := s.ResultRepo.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.TotalQuestions < 1 || item.Score < 0 || item.Score > item.TotalQuestions {
				logger.Log.Warn("Skipping invalid legacy result",
					zap.Uint("user_id", userID),
					zap.Int("score", item.Score),
					zap.Int("total", item.TotalQuestions),
				)
				continue
			}

			percentage := float64(item.Score) / float64(item.TotalQuestions) * 100
			if item.Percentage != nil {
				percentage = *item.Percentage
			}

			completedAt := s.Now()
			if item.CompletedAt != nil {
				completedAt = *item.CompletedAt
			}

			testType := item.TestType
			if testType == "" {
				testType = "quiz"
			}

			result := &model.TestResult{
				UserID:         userID,
				TestType:       testType,
				Score:          item.Score,
				TotalQuestions: item.TotalQuestions,
				Percentage:     percentage,
				CompletedAt:    completedAt,
			}
			if err := tx.Create(result).Error; err != nil {
				return err
			}
			synced++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return synced, nil
}

func (s *QuizService) History(userID uint, page, perPage int) ([]model.TestResult, *util.Pagination, error) {
	var results []model.TestResult
	pagination, err := util.Paginate(s.ResultRepo.QueryByUser(userID), page, perPage, &results)
	if err != nil {
		return nil, nil, err
	}
	return results, pagination, nil
}

func (s *QuizService) Stats(userID uint) (*repository.ResultStats, error) {
	return s.ResultRepo.StatsByUser(userID)
}

type QuizQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type QuizRequest struct {
	Title       string                `json:"title" binding:"required,max=100"`
	Description string                `json:"description"`
	Level       string                `json:"level"`
	Category    string                `json:"category" binding:"max=50"`
	IsActive    *bool                 `json:"is_active"`
	Questions   []QuizQuestionRequest `json:"questions"`
}

func (s *QuizService) CreateQuiz(req *QuizRequest) (*model.Quiz, error) {
	level := ""
	if req.Level != "" {
		normalized, ok := model.NormalizeLevel(req.Level)
		if !ok {
			return nil, util.ErrInvalidInput
		}
		level = string(normalized)
	}

	questions := make([]model.QuizQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, util.ErrInvalidInput
		}
		questions = append(questions, model.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	quiz := &model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Level:       level,
		Category:    req.Category,
		IsActive:    isActive,
		Questions:   questions,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// UpdateQuiz tam temsil günceller; soru listesi gönderilenle değiştirilir
func (s *QuizService) UpdateQuiz(id uint, req *QuizRequest) (*model.Quiz, error) {
	quiz, err := s.GetQuiz(id)
	if err != nil {
		return nil, err
	}

	level := ""
	if req.Level != "" {
		normalized, ok := model.NormalizeLevel(req.Level)
		if !ok {
			return nil, util.ErrInvalidInput
		}
		level = string(normalized)
	}

	questions := make([]model.QuizQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, util.ErrInvalidInput
		}
		questions = append(questions, model.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Level = level
	quiz.Category = req.Category
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}
	quiz.Questions = nil

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	if err := s.QuizRepo.ReplaceQuestions(quiz.ID, questions); err != nil {
		return nil, err
	}

	return s.GetQuiz(id)
}

func (s *QuizService) DeleteQuiz(id uint) error {
	if _, err := s.GetQuiz(id); err != nil {
		return err
	}
	return s.QuizRepo.Delete(id)
}
