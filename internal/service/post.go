package service

import (
	"context"
	"fmt"

	"blogapi/internal/auth"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// CreatePostInput carries the writable fields for a new post.
type CreatePostInput struct {
	Title        string
	Summary      *string
	CoverImage   *string
	UploaderName *string
	AuthorID     int64
	IsPublished  bool

	// Password, when non-empty, marks the post protected and stores a
	// hash of it. The plaintext is never persisted.
	Password string

	Tags []string
}

// UpdatePostInput carries partial updates. Nil pointers leave the field
// unchanged.
type UpdatePostInput struct {
	Title        *string
	Summary      *string
	CoverImage   *string
	UploaderName *string
	IsPublished  *bool

	// Password: nil leaves protection unchanged, empty string removes it,
	// anything else re-hashes and (re)enables it.
	Password *string

	// Tags: nil leaves the tag set unchanged, an empty slice removes all
	// links.
	Tags *[]string
}

// PostListResult is the service-level DTO for paginated posts.
type PostListResult struct {
	Items []model.Post `json:"data"`
	Total int          `json:"total"`
}

// PostService defines the use cases for blog posts.
type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*model.Post, error)
	Get(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, in UpdatePostInput) (*model.Post, error)
	List(ctx context.Context, limit, offset int, tagSlug string) (*PostListResult, error)
	Latest(ctx context.Context, limit int) ([]model.Post, error)
	Delete(ctx context.Context, id int64) error
	SetPublished(ctx context.Context, id int64, published bool) error
}

type postService struct {
	repo repository.PostRepository
	tags TagService
}

var _ PostService = (*postService)(nil)

func NewPostService(repo repository.PostRepository, tags TagService) PostService {
	return &postService{repo: repo, tags: tags}
}

func (s *postService) Create(ctx context.Context, in CreatePostInput) (*model.Post, error) {
	p := &model.Post{
		Title:        in.Title,
		Summary:      in.Summary,
		CoverImage:   in.CoverImage,
		UploaderName: in.UploaderName,
		AuthorID:     in.AuthorID,
		IsPublished:  in.IsPublished,
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash post password: %w", err)
		}
		p.IsProtected = true
		p.PasswordHash = &hash
	}

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	if len(in.Tags) > 0 {
		tags, err := s.tags.Sync(ctx, stored.ID, in.Tags)
		if err != nil {
			return nil, fmt.Errorf("sync tags: %w", err)
		}
		stored.Tags = tags
	}
	return stored, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	tags, err := s.tags.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return p, nil
}

func (s *postService) Update(ctx context.Context, id int64, in UpdatePostInput) (*model.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Summary != nil {
		p.Summary = in.Summary
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
				return nil, fmt.Errorf("hash post password: %w", err)
			}
			p.IsProtected = true
			p.PasswordHash = &hash
		}
	}

	stored, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if in.Tags != nil {
		tags, err := s.tags.Sync(ctx, id, *in.Tags)
		if err != nil {
			return nil, fmt.Errorf("sync tags: %w", err)
		}
		stored.Tags = tags
	} else {
		tags, err := s.tags.ListByPost(ctx, id)
		if err != nil {
			return nil, err
		}
		stored.Tags = tags
	}
	return stored, nil
}

func (s *postService) List(ctx context.Context, limit, offset int, tagSlug string) (*PostListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset}, tagSlug)
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		tags, err := s.tags.ListByPost(ctx, res.Items[i].ID)
		if err != nil {
			return nil, err
		}
		res.Items[i].Tags = tags
	}
	return &PostListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *postService) Latest(ctx context.Context, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.Latest(ctx, limit)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return mapNoRows(s.repo.Delete(ctx, id))
}

func (s *postService) SetPublished(ctx context.Context, id int64, published bool) error {
	return mapNoRows(s.repo.SetPublished(ctx, id, published))
}
