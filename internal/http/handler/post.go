package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

type createPostRequest struct {
	Title        string   `json:"title"`
	Summary      *string  `json:"summary"`
	CoverImage   *string  `json:"cover_image"`
	UploaderName *string  `json:"uploader_name"`
	IsPublished  bool     `json:"is_published"`
	Password     string   `json:"password"`
	Tags         []string `json:"tags"`
}

type updatePostRequest struct {
	Title        *string   `json:"title"`
	Summary      *string   `json:"summary"`
	CoverImage   *string   `json:"cover_image"`
	UploaderName *string   `json:"uploader_name"`
	IsPublished  *bool     `json:"is_published"`
	Password     *string   `json:"password"`
	Tags         *[]string `json:"tags"`
}

type publishRequest struct {
	IsPublished bool `json:"is_published"`
}

// ListPosts returns published posts, newest first.
// Query params: limit, offset, tag (slug filter).
func ListPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid limit or offset")
		}
		res, err := svc.List(c.UserContext(), limit, offset, c.Query("tag"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// LatestPosts returns the most recent published posts (default 5).
func LatestPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "5"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		posts, err := svc.Latest(c.UserContext(), limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(posts)
	}
}

// GetPost returns one post with its tags.
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// CreatePost creates a post. Admin only.
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createPostRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Title == "" {
			return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
		}

		profile := profileFromCtx(c)

		p, err := svc.Create(c.UserContext(), service.CreatePostInput{
			Title:        req.Title,
			Summary:      req.Summary,
			CoverImage:   req.CoverImage,
			UploaderName: req.UploaderName,
			AuthorID:     profile.User.ID,
			IsPublished:  req.IsPublished,
			Password:     req.Password,
			Tags:         req.Tags,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdatePost partially updates a post. Admin only.
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		p, err := svc.Update(c.UserContext(), id, service.UpdatePostInput{
			Title:        req.Title,
			Summary:      req.Summary,
			CoverImage:   req.CoverImage,
			UploaderName: req.UploaderName,
			IsPublished:  req.IsPublished,
			Password:     req.Password,
			Tags:         req.Tags,
		})
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// DeletePost deletes a post. Admin only.
func DeletePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PublishPost flips the publish flag. Admin only.
func PublishPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req publishRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.SetPublished(c.UserContext(), id, req.IsPublished); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"id": id, "is_published": req.IsPublished})
	}
}

// pageParams parses limit/offset query params.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, false
	}
	return limit, offset, true
}
