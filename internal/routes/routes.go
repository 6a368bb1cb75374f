package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"github.com/pllus/videotube/internal/controllers"
	"github.com/pllus/videotube/internal/middleware"
	"github.com/pllus/videotube/internal/services"
)

type Deps struct {
	Comments  *services.CommentService
	Playlists *services.PlaylistService
	Auth      *services.AuthService
	Videos    middleware.VideoLookup

	JWTSecret      string
	RequestTimeout time.Duration
	CORSOrigins    string
}

// NewApp builds the Fiber app with the shared middleware stack and every façade mounted.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "videotube",
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	// outside recover so a panic still gets its 500 request line
	app.Use(middleware.AccessLog())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTUidOnly(d.JWTSecret))

	api := app.Group("/api/v1")
	AuthRoutes(api, d)
	CommentRoutes(api, d)
	PlaylistRoutes(api, d)

	return app
}
