package service

import (
	"context"
	"fmt"

	"blogapi/internal/auth"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

type CreateProjectInput struct {
	Name         string
	Description  *string
	DemoURL      *string
	SourceURL    *string
	CoverImage   *string
	UploaderName *string
	AuthorID     int64
	IsPublished  bool
	Password     string
}

type UpdateProjectInput struct {
	Name         *string
	Description  *string
	DemoURL      *string
	SourceURL    *string
	CoverImage   *string
	UploaderName *string
	IsPublished  *bool
	Password     *string
}

// ProjectListResult is the service-level DTO for paginated projects.
type ProjectListResult struct {
	Items []model.Project `json:"data"`
	Total int             `json:"total"`
}

// ProjectService defines the use cases for portfolio projects.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, id int64) (*model.Project, error)
	Update(ctx context.Context, id int64, in UpdateProjectInput) (*model.Project, error)
	List(ctx context.Context, limit, offset int) (*ProjectListResult, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo repository.ProjectRepository
}

var _ ProjectService = (*projectService)(nil)

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	p := &model.Project{
		Name:         in.Name,
		Description:  in.Description,
		DemoURL:      in.DemoURL,
		SourceURL:    in.SourceURL,
		CoverImage:   in.CoverImage,
		UploaderName: in.UploaderName,
		AuthorID:     in.AuthorID,
		IsPublished:  in.IsPublished,
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash project password: %w", err)
		}
		p.IsProtected = true
		p.PasswordHash = &hash
	}
	return s.repo.Create(ctx, p)
}

func (s *projectService) Get(ctx context.Context, id int64) (*model.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id int64, in UpdateProjectInput) (*model.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.DemoURL != nil {
		p.DemoURL = in.DemoURL
	}
	if in.SourceURL != nil {
		p.SourceURL = in.SourceURL
	}
	if in.CoverImage != nil {
		p.CoverImage = in.CoverImage
	}
	if in.UploaderName != nil {
		p.UploaderName = in.UploaderName
	}
	if in.IsPublished != nil {
		p.IsPublished = *in.IsPublished
	}
	if in.Password != nil {
		if *in.Password == "" {
			p.IsProtected = false
			p.PasswordHash = nil
		} else {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return nil, fmt.Errorf("hash project password: %w", err)
			}
			p.IsProtected = true
			p.PasswordHash = &hash
		}
	}

	stored, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return stored, nil
}

func (s *projectService) List(ctx context.Context, limit, offset int) (*ProjectListResult, error) {
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
	return &ProjectListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return mapNoRows(s.repo.Delete(ctx, id))
}
