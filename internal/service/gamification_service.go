package service

import (
	"errors"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"
	"talkify_backend/pkg/logger"
	"talkify_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GamificationService struct {
	DB              *gorm.DB
	UserRepo        *repository.UserRepository
	AchievementRepo *repository.AchievementRepository
	ProgressRepo    *repository.ProgressRepository
	ResultRepo      *repository.TestResultRepository

	// Now testlerde sabitlenebilir
	Now func() time.Time
}

func NewGamificationService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	achievementRepo *repository.AchievementRepository,
	progressRepo *repository.ProgressRepository,
	resultRepo *repository.TestResultRepository,
) *GamificationService {
	return &GamificationService{
		DB:              db,
		UserRepo:        userRepo,
		AchievementRepo: achievementRepo,
		ProgressRepo:    progressRepo,
		ResultRepo:      resultRepo,
		Now:             time.Now,
	}
}

type streakTransition string

const (
	transitionStart    streakTransition = "start"    // ilk aktivite ya da seri kopmuş
	transitionContinue streakTransition = "continue" // dün aktifti, seri uzuyor
	transitionSameDay  streakTransition = "same_day" // bugün zaten loglanmış
	transitionFuture   streakTransition = "future"   // saat kayması, dokunma
)

// resolveStreak tek geçiş fonksiyonu; hem okuma hem yazma yolu bunu kullanır.
// base, bir aktivite loglanacaksa üzerine +1 eklenecek tabandır.
func resolveStreak(last *time.Time, current int, today time.Time) (base int, t streakTransition) {
	if last == nil {
		return 0, transitionStart
	}

	lastDay := truncateToDay(*last)
	switch {
	case lastDay.Equal(today):
		return current, transitionSameDay
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return current, transitionContinue
	case lastDay.After(today):
		return current, transitionFuture
	default:
		return 0, transitionStart
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type StreakStatus struct {
	StreakCount      int        `json:"streakCount"`
	LastActivityDate *time.Time `json:"lastActivityDate"`
	ActiveToday      bool       `json:"activeToday"`
}

// LogActivity bugünün aktivitesini işler. Takvim günü başına idempotenttir:
// aynı gün ikinci çağrı seriyi değiştirmez.
func (s *GamificationService) LogActivity(userID uint) (*StreakStatus, error) {
	today := truncateToDay(s.Now())

	var status *StreakStatus
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		base, transition := resolveStreak(user.LastActivityDate, user.StreakCount, today)
		monitoring.StreakUpdates.WithLabelValues(string(transition)).Inc()

		switch transition {
		case transitionSameDay:
			status = &StreakStatus{StreakCount: user.StreakCount, LastActivityDate: user.LastActivityDate, ActiveToday: true}
			return nil
		case transitionFuture:
			logger.Log.Warn("Activity date in the future, ignoring",
				zap.Uint("user_id", user.ID),
				zap.Timep("last_activity_date", user.LastActivityDate),
			)
			status = &StreakStatus{StreakCount: user.StreakCount, LastActivityDate: user.LastActivityDate, ActiveToday: false}
			return nil
		}

		user.StreakCount = base + 1
		user.LastActivityDate = &today
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		status = &StreakStatus{StreakCount: user.StreakCount, LastActivityDate: user.LastActivityDate, ActiveToday: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// GetStreak mevcut seriyi döner; seri kopmuşsa sıfırlamayı kalıcılaştırır
// ama asla artırmaz.
func (s *GamificationService) GetStreak(userID uint) (*StreakStatus, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	today := truncateToDay(s.Now())
	_, transition := resolveStreak(user.LastActivityDate, user.StreakCount, today)

	if transition == transitionStart && user.StreakCount != 0 {
		// Koşullu tek UPDATE: bu okuma bayatsa ve araya bir aktivite kaydı
		// girdiyse satır atlanır, taze satır yeniden okunur.
		reset, err := s.UserRepo.ResetLapsedStreak(userID, today.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		if reset {
			monitoring.StreakUpdates.WithLabelValues("lapse_reset").Inc()
		}
		if user, err = s.UserRepo.FindByID(userID); err != nil {
			return nil, err
		}
		_, transition = resolveStreak(user.LastActivityDate, user.StreakCount, today)
	}

	return &StreakStatus{
		StreakCount:      user.StreakCount,
		LastActivityDate: user.LastActivityDate,
		ActiveToday:      transition == transitionSameDay,
	}, nil
}

type AchievementStatus struct {
	model.Achievement
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

// ListAchievements tüm tanımları kullanıcının kazanım durumuyla döner
func (s *GamificationService) ListAchievements(userID uint) ([]AchievementStatus, error) {
	all, err := s.AchievementRepo.ListAll()
	if err != nil {
		return nil, err
	}

	earned, err := s.AchievementRepo.ListEarnedByUser(userID)
	if err != nil {
		return nil, err
	}
	earnedAt := make(map[uint]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	statuses := make([]AchievementStatus, 0, len(all))
	for _, a := range all {
		st := AchievementStatus{Achievement: a}
		if at, ok := earnedAt[a.ID]; ok {
			st.Earned = true
			at := at
			st.EarnedAt = &at
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func (s *GamificationService) ListEarned(userID uint) ([]model.UserAchievement, error) {
	return s.AchievementRepo.ListEarnedByUser(userID)
}

// CheckAchievements eşiği geçen ve henüz kazanılmamış başarımları verir.
// Yarışan istekler unique kısıta takılır ve sessizce atlanır.
func (s *GamificationService) CheckAchievements(userID uint) ([]model.Achievement, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	learnedWords, err := s.ProgressRepo.CountLearned(userID)
	if err != nil {
		return nil, err
	}
	quizCount, err := s.ResultRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	perfectCount, err := s.ResultRepo.CountPerfectByUser(userID)
	if err != nil {
		return nil, err
	}

	progress := map[string]int64{
		model.RequirementWordCount:   learnedWords,
		model.RequirementStreakDays:  int64(user.StreakCount),
		model.RequirementQuizCount:   quizCount,
		model.RequirementQuizPerfect: perfectCount,
	}

	all, err := s.AchievementRepo.ListAll()
	if err != nil {
		return nil, err
	}
	earned, err := s.AchievementRepo.ListEarnedByUser(userID)
	if err != nil {
		return nil, err
	}
	alreadyEarned := make(map[uint]bool, len(earned))
	for _, ua := range earned {
		alreadyEarned[ua.AchievementID] = true
	}

	now := s.Now()
	var unlocked []model.Achievement
	for _, a := range all {
		if alreadyEarned[a.ID] {
			continue
		}
		value, ok := progress[a.RequirementType]
		if !ok || value < int64(a.RequirementValue) {
			continue
		}
		if err := s.AchievementRepo.Award(&model.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			EarnedAt:      now,
		}); err != nil {
			return nil, err
		}
		logger.Log.Info("Achievement unlocked",
			zap.Uint("user_id", userID),
			zap.String("achievement", a.Name),
		)
		unlocked = append(unlocked, a)
	}
	return unlocked, nil
}
