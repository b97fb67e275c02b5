package service

import (
	"errors"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"gorm.io/gorm"
)

type GrammarService struct {
	GrammarRepo *repository.GrammarRepository
}

func NewGrammarService(grammarRepo *repository.GrammarRepository) *GrammarService {
	return &GrammarService{GrammarRepo: grammarRepo}
}

func (s *GrammarService) List(level string, page, perPage int) ([]model.GrammarContent, *util.Pagination, error) {
	if level != "" {
		if normalized, ok := model.NormalizeLevel(level); ok {
			level = string(normalized)
		} else {
			level = ""
		}
	}

	var contents []model.GrammarContent
	pagination, err := util.Paginate(s.GrammarRepo.Query(level), page, perPage, &contents)
	if err != nil {
		return nil, nil, err
	}
	return contents, pagination, nil
}

func (s *GrammarService) Get(id uint) (*model.GrammarContent, error) {
	content, err := s.GrammarRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

type GrammarRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
	Level   string `json:"level"`
}

func (s *GrammarService) Create(req *GrammarRequest) (*model.GrammarContent, error) {
	level := ""
	if req.Level != "" {
		normalized, ok := model.NormalizeLevel(req.Level)
		if !ok {
			return nil, util.ErrInvalidInput
		}
		level = string(normalized)
	}

	content := &model.GrammarContent{
		Title:   req.Title,
		Content: req.Content,
		Level:   level,
	}
	if err := s.GrammarRepo.Create(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *GrammarService) Update(id uint, req *GrammarRequest) (*model.GrammarContent, error) {
	content, err := s.Get(id)
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

	content.Title = req.Title
	content.Content = req.Content
	content.Level = level

	if err := s.GrammarRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *GrammarService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.GrammarRepo.Delete(id)
}
