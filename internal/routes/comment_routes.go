package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pllus/videotube/internal/controllers"
	"github.com/pllus/videotube/internal/middleware"
)

func CommentRoutes(api fiber.Router, d Deps) {
	h := &controllers.CommentHandler{Service: d.Comments, Timeout: d.RequestTimeout}
	video := middleware.ResolveVideo(d.Videos)

	comments := api.Group("/comments")

	// :videoId is optional at the router so a missing id reaches the
	// resolver and is answered with 400 instead of 404.

	// GET /api/v1/comments/:videoId?page=1&limit=10
	comments.Get("/:videoId?", video, h.GetAll)

	// POST /api/v1/comments/:videoId      {"content": "nice video"}
	comments.Post("/:videoId?", middleware.RequireAuth(), video, h.Add)

	// PATCH /api/v1/comments/:videoId     {"oldContent": "nice video", "content": "great video"}
	comments.Patch("/:videoId?", middleware.RequireAuth(), video, h.Update)

	// DELETE /api/v1/comments/:videoId    {"content": "great video"}
	comments.Delete("/:videoId?", middleware.RequireAuth(), video, h.Delete)
}
