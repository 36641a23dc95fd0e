package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

type createProjectRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DemoURL      *string `json:"demo_url"`
	SourceURL    *string `json:"source_url"`
	CoverImage   *string `json:"cover_image"`
	UploaderName *string `json:"uploader_name"`
	IsPublished  bool    `json:"is_published"`
	Password     string  `json:"password"`
}

type updateProjectRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DemoURL      *string `json:"demo_url"`
	SourceURL    *string `json:"source_url"`
	CoverImage   *string `json:"cover_image"`
	UploaderName *string `json:"uploader_name"`
	IsPublished  *bool   `json:"is_published"`
	Password     *string `json:"password"`
}

// ListProjects returns published projects, newest first.
func ListProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "invalid limit or offset")
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetProject returns one project.
func GetProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "project not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// CreateProject creates a project. Admin only.
func CreateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Name == "" {
			return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
		}

		profile := profileFromCtx(c)

		p, err := svc.Create(c.UserContext(), service.CreateProjectInput{
			Name:         req.Name,
			Description:  req.Description,
			DemoURL:      req.DemoURL,
			SourceURL:    req.SourceURL,
			CoverImage:   req.CoverImage,
			UploaderName: req.UploaderName,
			AuthorID:     profile.User.ID,
			IsPublished:  req.IsPublished,
			Password:     req.Password,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProject partially updates a project. Admin only.
func UpdateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updateProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		p, err := svc.Update(c.UserContext(), id, service.UpdateProjectInput{
			Name:         req.Name,
			Description:  req.Description,
			DemoURL:      req.DemoURL,
			SourceURL:    req.SourceURL,
			CoverImage:   req.CoverImage,
			UploaderName: req.UploaderName,
			IsPublished:  req.IsPublished,
			Password:     req.Password,
		})
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "project not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// DeleteProject deletes a project. Admin only.
func DeleteProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "project not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
