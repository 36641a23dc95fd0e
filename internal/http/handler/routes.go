package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/internal/http/middleware"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Posts    service.PostService
	Projects service.ProjectService
	Life     service.LifeService
	Tags     service.TagService
	Content  service.ContentService
	Auth     service.AuthService
	Settings service.SettingService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, gatherer prometheus.Gatherer) {
	admin := middleware.RequireAdmin(svcs.Auth)

	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Auth
	authGroup := app.Group("/auth")
	authGroup.Post("/login", Login(svcs.Auth))
	authGroup.Post("/register", Register(svcs.Auth))
	authGroup.Get("/me", middleware.RequireUser(svcs.Auth), Me())

	// Posts
	posts := app.Group("/posts")
	posts.Get("/", ListPosts(svcs.Posts))
	posts.Get("/latest", LatestPosts(svcs.Posts))
	posts.Get("/:id", GetPost(svcs.Posts))
	registerContentRoutes(posts, svcs.Content, model.KindPost, admin)
	posts.Post("/", admin, CreatePost(svcs.Posts))
	posts.Post("/upload", admin, UploadFile(svcs.Content))
	posts.Put("/:id", admin, UpdatePost(svcs.Posts))
	posts.Delete("/:id", admin, DeletePost(svcs.Posts))
	posts.Put("/:id/publish", admin, PublishPost(svcs.Posts))

	// Projects
	projects := app.Group("/projects")
	projects.Get("/", ListProjects(svcs.Projects))
	projects.Get("/:id", GetProject(svcs.Projects))
	registerContentRoutes(projects, svcs.Content, model.KindProject, admin)
	projects.Post("/", admin, CreateProject(svcs.Projects))
	projects.Put("/:id", admin, UpdateProject(svcs.Projects))
	projects.Delete("/:id", admin, DeleteProject(svcs.Projects))

	// Life log
	life := app.Group("/life")
	life.Get("/", ListLifeEntries(svcs.Life))
	life.Get("/:id", GetLifeEntry(svcs.Life))
	registerContentRoutes(life, svcs.Content, model.KindLife, admin)
	life.Post("/", admin, CreateLifeEntry(svcs.Life))
	life.Put("/:id", admin, UpdateLifeEntry(svcs.Life))
	life.Delete("/:id", admin, DeleteLifeEntry(svcs.Life))
	life.Put("/:id/publish", admin, PublishLifeEntry(svcs.Life))

	// Tags
	app.Get("/tags", ListTags(svcs.Tags))

	// Settings
	app.Get("/settings", ListSettings(svcs.Settings))
	app.Get("/settings/:key", GetSetting(svcs.Settings))
	app.Put("/settings/:key", admin, PutSetting(svcs.Settings))
}

// registerContentRoutes wires the shared protected-content endpoints under
// an entity group: password exchange, gated reads and markdown upload.
func registerContentRoutes(g fiber.Router, svc service.ContentService, kind model.Kind, admin fiber.Handler) {
	g.Post("/:id/access", AccessContent(svc, kind))
	g.Get("/:id/content", GetContent(svc, kind))
	g.Get("/:id/content/raw", GetRawContent(svc, kind))
	g.Post("/:id/markdown", admin, UploadContent(svc, kind))
}
