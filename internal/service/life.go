package service

import (
	"context"
	"fmt"

	"blogapi/internal/auth"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

type CreateLifeEntryInput struct {
	Title       string
	Summary     *string
	IsPublished bool
	Password    string
}

type UpdateLifeEntryInput struct {
	Title       *string
	Summary     *string
	IsPublished *bool
	Password    *string
}

// LifeListResult is the service-level DTO for paginated life-log entries.
type LifeListResult struct {
	Items []model.LifeEntry `json:"data"`
	Total int               `json:"total"`
}

// LifeService defines the use cases for life-log entries.
type LifeService interface {
	Create(ctx context.Context, in CreateLifeEntryInput) (*model.LifeEntry, error)
	Get(ctx context.Context, id int64) (*model.LifeEntry, error)
	Update(ctx context.Context, id int64, in UpdateLifeEntryInput) (*model.LifeEntry, error)
	List(ctx context.Context, limit, offset int) (*LifeListResult, error)
	Delete(ctx context.Context, id int64) error
	SetPublished(ctx context.Context, id int64, published bool) error
}

type lifeService struct {
	repo repository.LifeRepository
}

var _ LifeService = (*lifeService)(nil)

func NewLifeService(repo repository.LifeRepository) LifeService {
	return &lifeService{repo: repo}
}

func (s *lifeService) Create(ctx context.Context, in CreateLifeEntryInput) (*model.LifeEntry, error) {
	e := &model.LifeEntry{
		Title:       in.Title,
		Summary:     in.Summary,
		IsPublished: in.IsPublished,
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash entry password: %w", err)
		}
		e.IsProtected = true
		e.PasswordHash = &hash
	}
	return s.repo.Create(ctx, e)
}

func (s *lifeService) Get(ctx context.Context, id int64) (*model.LifeEntry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return e, nil
}

func (s *lifeService) Update(ctx context.Context, id int64, in UpdateLifeEntryInput) (*model.LifeEntry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Summary != nil {
		e.Summary = in.Summary
	}
	if in.IsPublished != nil {
		e.IsPublished = *in.IsPublished
	}
	if in.Password != nil {
		if *in.Password == "" {
			e.IsProtected = false
			e.PasswordHash = nil
		} else {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return nil, fmt.Errorf("hash entry password: %w", err)
			}
			e.IsProtected = true
			e.PasswordHash = &hash
		}
	}

	stored, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return stored, nil
}

func (s *lifeService) List(ctx context.Context, limit, offset int) (*LifeListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &LifeListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *lifeService) Delete(ctx context.Context, id int64) error {
	return mapNoRows(s.repo.Delete(ctx, id))
}

func (s *lifeService) SetPublished(ctx context.Context, id int64, published bool) error {
	return mapNoRows(s.repo.SetPublished(ctx, id, published))
}
