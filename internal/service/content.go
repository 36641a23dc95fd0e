package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/markdown"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

// ContentService implements the protected-content gate shared by posts,
// projects and life-log entries: password exchange for a scoped access
// token, token-gated content reads, and markdown uploads.
type ContentService interface {
	// Access exchanges a plaintext password for a content access token
	// scoped to one entity. Any failure (missing entity, unprotected
	// entity, missing stored hash, wrong password) returns ErrAccessDenied.
	Access(ctx context.Context, kind model.Kind, id int64, password string) (string, error)

	// Content returns the raw markdown body for an entity. Unprotected
	// entities ignore the token entirely. Protected entities require a
	// token that verifies against this exact kind and id; otherwise
	// ErrAccessDenied. An entity with no uploaded content returns "".
	Content(ctx context.Context, kind model.Kind, id int64, token string) (string, error)

	// ContentHTML is Content followed by markdown-to-HTML rendering.
	ContentHTML(ctx context.Context, kind model.Kind, id int64, token string) (string, error)

	// UploadMarkdown stores a markdown body in the content store under a
	// fresh key and repoints the entity's content path at it. A second
	// upload overwrites the pointer; the previous object is left behind.
	UploadMarkdown(ctx context.Context, kind model.Kind, id int64, r io.Reader, size int64) (string, error)

	// Upload stores a standalone markdown file and returns its object key
	// and MD5 checksum. Nothing points at the object until a later entity
	// update adopts the key.
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, string, error)
}

type contentService struct {
	posts    repository.PostRepository
	projects repository.ProjectRepository
	life     repository.LifeRepository
	store    storage.Storage
	tokens   *auth.Tokens
	renderer *markdown.Renderer
}

var _ ContentService = (*contentService)(nil)

func NewContentService(
	posts repository.PostRepository,
	projects repository.ProjectRepository,
	life repository.LifeRepository,
	store storage.Storage,
	tokens *auth.Tokens,
	renderer *markdown.Renderer,
) ContentService {
	return &contentService{
		posts:    posts,
		projects: projects,
		life:     life,
		store:    store,
		tokens:   tokens,
		renderer: renderer,
	}
}

// entityMeta is the slice of an entity the gate cares about.
type entityMeta struct {
	protected bool
	hash      *string
	path      *string
}

func (s *contentService) lookup(ctx context.Context, kind model.Kind, id int64) (*entityMeta, error) {
	switch kind {
	case model.KindPost:
		p, err := s.posts.FindByID(ctx, id)
		if err != nil {
			return nil, mapNoRows(err)
		}
		return &entityMeta{protected: p.IsProtected, hash: p.PasswordHash, path: p.ContentPath}, nil
	case model.KindProject:
		p, err := s.projects.FindByID(ctx, id)
		if err != nil {
			return nil, mapNoRows(err)
		}
		return &entityMeta{protected: p.IsProtected, hash: p.PasswordHash, path: p.ContentPath}, nil
	case model.KindLife:
		e, err := s.life.FindByID(ctx, id)
		if err != nil {
			return nil, mapNoRows(err)
		}
		return &entityMeta{protected: e.IsProtected, hash: e.PasswordHash, path: e.ContentPath}, nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
}

func (s *contentService) Access(ctx context.Context, kind model.Kind, id int64, password string) (string, error) {
	meta, err := s.lookup(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrAccessDenied
		}
		return "", err
	}
	// An unprotected entity has no password to exchange; a protected one
	// with no stored hash can never be unlocked.
	if !meta.protected || meta.hash == nil || *meta.hash == "" {
		return "", ErrAccessDenied
	}
	if !auth.CheckPassword(password, *meta.hash) {
		return "", ErrAccessDenied
	}
	return s.tokens.IssueContent(kind, id)
}

func (s *contentService) Content(ctx context.Context, kind model.Kind, id int64, token string) (string, error) {
	meta, err := s.lookup(ctx, kind, id)
	if err != nil {
		return "", err
	}
	if meta.protected && !s.tokens.VerifyContent(token, kind, id) {
		return "", ErrAccessDenied
	}
	if meta.path == nil || *meta.path == "" {
		return "", nil
	}
	rc, _, err := s.store.Get(ctx, *meta.path)
	if err != nil {
		return "", fmt.Errorf("read content object: %w", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read content object: %w", err)
	}
	return string(b), nil
}

func (s *contentService) ContentHTML(ctx context.Context, kind model.Kind, id int64, token string) (string, error) {
	raw, err := s.Content(ctx, kind, id, token)
	if err != nil {
		return "", err
	}
	return s.renderer.Render([]byte(raw))
}

func (s *contentService) UploadMarkdown(ctx context.Context, kind model.Kind, id int64, r io.Reader, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	// Existence check first so a missing entity does not orphan an object.
	if _, err := s.lookup(ctx, kind, id); err != nil {
		return "", err
	}

	key := contentKey(kind, id)
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: "text/markdown",
	}); err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.updateContentPath(ctx, kind, id, key); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return "", fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return "", fmt.Errorf("db save failed: %w", err)
	}
	return key, nil
}

func (s *contentService) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, string, error) {
	if r == nil {
		return "", "", ErrReaderNil
	}
	var buf [6]byte
	_, _ = rand.Read(buf[:])
	key := fmt.Sprintf("uploads/%s_%s", hex.EncodeToString(buf[:]), path.Base(filename))

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: "text/markdown",
	})
	if err != nil {
		return "", "", fmt.Errorf("upload to storage: %w", err)
	}
	// Single-part puts report the object's MD5 as the ETag.
	return key, strings.Trim(info.ETag, `"`), nil
}

func (s *contentService) updateContentPath(ctx context.Context, kind model.Kind, id int64, path string) error {
	switch kind {
	case model.KindPost:
		return mapNoRows(s.posts.UpdateContentPath(ctx, id, path))
	case model.KindProject:
		return mapNoRows(s.projects.UpdateContentPath(ctx, id, path))
	case model.KindLife:
		return mapNoRows(s.life.UpdateContentPath(ctx, id, path))
	default:
		return fmt.Errorf("unknown content kind %q", kind)
	}
}

// contentKey builds the object key for an uploaded body. The random suffix
// makes every upload land on a fresh object; the row's pointer then decides
// which one is live.
func contentKey(kind model.Kind, id int64) string {
	var buf [6]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("markdown/%s_%d_%s.md", kind, id, hex.EncodeToString(buf[:]))
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
