package handler

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

// The access/content endpoints are shared by posts, projects and life-log
// entries; handlers are parameterized by kind. Denials are deliberately
// uniform: a 200 with an empty payload, so callers cannot distinguish
// "wrong password" from "nothing to unlock".

type accessRequest struct {
	Password string `json:"password"`
}

// AccessContent exchanges a password for a content access token.
// Response: {"<kind>_access_token": "<jwt>"}, empty string on any denial.
func AccessContent(svc service.ContentService, kind model.Kind) fiber.Handler {
	tokenKey := string(kind) + "_access_token"
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req accessRequest
		// A malformed body is just a failed attempt, not a client error.
		_ = c.BodyParser(&req)

		token, err := svc.Access(c.UserContext(), kind, id, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrAccessDenied) {
				return c.JSON(fiber.Map{tokenKey: ""})
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{tokenKey: token})
	}
}

// GetContent returns the body rendered to HTML.
// Response: {"content": "<html>"}, empty string when access is denied,
// the entity does not exist or nothing has been uploaded yet.
func GetContent(svc service.ContentService, kind model.Kind) fiber.Handler {
	return contentHandler(kind, func(c *fiber.Ctx, id int64, token string) (string, error) {
		return svc.ContentHTML(c.UserContext(), kind, id, token)
	})
}

// GetRawContent is GetContent without the HTML rendering step, for editors
// that want the markdown source back.
func GetRawContent(svc service.ContentService, kind model.Kind) fiber.Handler {
	return contentHandler(kind, func(c *fiber.Ctx, id int64, token string) (string, error) {
		return svc.Content(c.UserContext(), kind, id, token)
	})
}

func contentHandler(kind model.Kind, fetch func(c *fiber.Ctx, id int64, token string) (string, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		content, err := fetch(c, id, contentToken(c))
		if err != nil {
			// A missing entity reads the same as a denial so callers cannot
			// probe which ids exist.
			if errors.Is(err, service.ErrAccessDenied) || errors.Is(err, service.ErrNotFound) {
				return c.JSON(fiber.Map{"content": ""})
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"content": content})
	}
}

// UploadContent stores a markdown file as the entity's body
// (multipart/form-data, field name: file).
func UploadContent(svc service.ContentService, kind model.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := entityID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if !allowedMarkdownUpload(fh) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "only markdown uploads are accepted")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		path, err := svc.UploadMarkdown(c.UserContext(), kind, id, f, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"content_path": path})
	}
}

// UploadFile stores a standalone markdown file without touching any entity.
// Response: {"content_path": "<key>", "md5": "<checksum>"}.
func UploadFile(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if !allowedMarkdownUpload(fh) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "only markdown uploads are accepted")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		path, sum, err := svc.Upload(c.UserContext(), fh.Filename, f, fh.Size)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"content_path": path, "md5": sum})
	}
}

// allowedMarkdownUpload accepts a .md filename or a markdown/plain-text
// content type. Checked before anything is written to storage.
func allowedMarkdownUpload(fh *multipart.FileHeader) bool {
	if strings.HasSuffix(strings.ToLower(fh.Filename), ".md") {
		return true
	}
	ct := fh.Header.Get(fiber.HeaderContentType)
	return ct == "text/markdown" || ct == "text/plain"
}

// entityID parses the :id route parameter.
func entityID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// contentToken extracts the access token: Authorization bearer header
// first, ?token= as a fallback for clients that cannot set headers.
func contentToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Query("token")
}
