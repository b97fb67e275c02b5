package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"
	"talkify_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dailyWordCacheKey = "talkify:daily_word:"

type WordService struct {
	WordRepo *repository.WordRepository
	Redis    *redis.Client

	Now func() time.Time
}

func NewWordService(wordRepo *repository.WordRepository, rdb *redis.Client) *WordService {
	return &WordService{
		WordRepo: wordRepo,
		Redis:    rdb,
		Now:      time.Now,
	}
}

type WordFilter struct {
	Level    string
	Category string
	Search   string
}

// normalizeFilter geçersiz seviye filtresini sessizce düşürür
func (f WordFilter) normalized() WordFilter {
	if f.Level != "" {
		if level, ok := model.NormalizeLevel(f.Level); ok {
			f.Level = string(level)
		} else {
			f.Level = ""
		}
	}
	return f
}

func (s *WordService) ListWords(filter WordFilter, page, perPage int) ([]model.Word, *util.Pagination, error) {
	filter = filter.normalized()
	query := s.WordRepo.Query(filter.Level, filter.Category, filter.Search).Order("id ASC")

	var words []model.Word
	pagination, err := util.Paginate(query, page, perPage, &words)
	if err != nil {
		return nil, nil, err
	}
	return words, pagination, nil
}

func (s *WordService) GetWord(id uint) (*model.Word, error) {
	word, err := s.WordRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWordNotFound
		}
		return nil, err
	}
	return word, nil
}

func (s *WordService) Categories() ([]string, error) {
	return s.WordRepo.Categories()
}

func (s *WordService) Levels() []model.LanguageLevel {
	return model.ValidLevels
}

// DailyWord günün kelimesini döner. Gün için kayıt yoksa rastgele bir kelime
// seçilip kalıcılaştırılır; sonuç gün sonuna kadar redis'te tutulur.
func (s *WordService) DailyWord(ctx context.Context) (*model.Word, error) {
	today := s.Now().Format(util.DateFormat)
	cacheKey := dailyWordCacheKey + today

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var word model.Word
			if err := json.Unmarshal([]byte(cached), &word); err == nil {
				return &word, nil
			}
		}
	}

	daily, err := s.WordRepo.FindDailyByDate(today)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		word, err := s.WordRepo.Random("")
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrWordNotFound
			}
			return nil, err
		}
		daily = &model.DailyWord{WordID: word.ID, Word: word, Date: today}
		if err := s.WordRepo.CreateDaily(daily); err != nil {
			// Yarışan istek aynı günü yazmış olabilir; kazananı oku
			if existing, ferr := s.WordRepo.FindDailyByDate(today); ferr == nil {
				daily = existing
			} else {
				return nil, err
			}
		}
	}

	if s.Redis != nil && daily.Word != nil {
		if payload, err := json.Marshal(daily.Word); err == nil {
			ttl := time.Until(truncateToDay(s.Now()).AddDate(0, 0, 1))
			if err := s.Redis.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				logger.Log.Warn("Daily word cache write failed", zap.Error(err))
			}
		}
	}
	return daily.Word, nil
}

type WordRequest struct {
	Word               string `json:"word" binding:"required,max=100"`
	Meaning            string `json:"meaning" binding:"required,max=255"`
	Category           string `json:"category" binding:"max=50"`
	Level              string `json:"level"`
	ExampleSentence    string `json:"example_sentence"`
	ExampleTranslation string `json:"example_translation"`
	Pronunciation      string `json:"pronunciation" binding:"max=100"`
}

func (s *WordService) CreateWord(req *WordRequest) (*model.Word, error) {
	level := ""
	if req.Level != "" {
		normalized, ok := model.NormalizeLevel(req.Level)
		if !ok {
			return nil, util.ErrInvalidInput
		}
		level = string(normalized)
	}

	if _, err := s.WordRepo.FindByText(req.Word); err == nil {
		return nil, util.ErrWordExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	word := &model.Word{
		Word:               req.Word,
		Meaning:            req.Meaning,
		Category:           req.Category,
		Level:              level,
		ExampleSentence:    req.ExampleSentence,
		ExampleTranslation: req.ExampleTranslation,
		Pronunciation:      req.Pronunciation,
	}
	if err := s.WordRepo.Create(word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *WordService) UpdateWord(id uint, req *WordRequest) (*model.Word, error) {
	word, err := s.GetWord(id)
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

	word.Word = req.Word
	word.Meaning = req.Meaning
	word.Category = req.Category
	word.Level = level
	word.ExampleSentence = req.ExampleSentence
	word.ExampleTranslation = req.ExampleTranslation
	word.Pronunciation = req.Pronunciation

	if err := s.WordRepo.Update(word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *WordService) DeleteWord(id uint) error {
	if _, err := s.GetWord(id); err != nil {
		return err
	}
	return s.WordRepo.Delete(id)
}
