package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// TagService manages the tag catalog and post-tag links.
type TagService interface {
	// Sync replaces a post's tag set with exactly the given names, creating
	// missing tags on the fly. Passing the current set is a no-op; passing
	// fewer names unlinks the rest. Duplicate names collapse to one link.
	// Returns the resulting tag set in input order.
	Sync(ctx context.Context, postID int64, names []string) ([]model.Tag, error)

	List(ctx context.Context) ([]model.Tag, error)
	ListByPost(ctx context.Context, postID int64) ([]model.Tag, error)
}

type tagService struct {
	repo repository.TagRepository
}

var _ TagService = (*tagService)(nil)

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) Sync(ctx context.Context, postID int64, names []string) ([]model.Tag, error) {
	// Dedupe while preserving first-seen order; empty names are skipped.
	seen := make(map[string]struct{}, len(names))
	desired := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		desired = append(desired, n)
	}

	tags := make([]model.Tag, 0, len(desired))
	want := make(map[int64]model.Tag, len(desired))
	for _, name := range desired {
		tag, err := s.ensureTag(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
		want[tag.ID] = *tag
	}

	current, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	have := make(map[int64]struct{}, len(current))
	for _, t := range current {
		have[t.ID] = struct{}{}
		if _, keep := want[t.ID]; !keep {
			if err := s.repo.Unlink(ctx, postID, t.ID); err != nil {
				return nil, fmt.Errorf("unlink tag %q: %w", t.Name, err)
			}
		}
	}
	for _, t := range tags {
		if _, linked := have[t.ID]; !linked {
			if err := s.repo.Link(ctx, postID, t.ID); err != nil {
				return nil, fmt.Errorf("link tag %q: %w", t.Name, err)
			}
		}
	}
	return tags, nil
}

// ensureTag finds a tag by name, creating it if absent. The slug mirrors
// the name verbatim. When a concurrent writer wins the insert race the
// unique violation is treated as "already exists" and the row re-fetched.
func (s *tagService) ensureTag(ctx context.Context, name string) (*model.Tag, error) {
	tag, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	tag, err = s.repo.Create(ctx, name, name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return s.repo.FindByName(ctx, name)
		}
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}
	return tag, nil
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.repo.List(ctx)
}

func (s *tagService) ListByPost(ctx context.Context, postID int64) ([]model.Tag, error) {
	return s.repo.ListByPost(ctx, postID)
}
