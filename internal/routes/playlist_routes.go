package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pllus/videotube/internal/controllers"
	"github.com/pllus/videotube/internal/middleware"
)

func PlaylistRoutes(api fiber.Router, d Deps) {
	h := &controllers.PlaylistHandler{Service: d.Playlists, Timeout: d.RequestTimeout}

	// every playlist route needs a logged-in user
	playlist := api.Group("/playlist", middleware.RequireAuth())

	playlist.Post("/create-playlist", h.Create)
	playlist.Get("/get-all-playlists", h.GetUserPlaylists)
	playlist.Get("/get-playlist/:playlistId", h.GetByID)
	playlist.Patch("/add-video-to-playlist/:playlistId/:videoId", h.AddVideo)
	playlist.Patch("/remove-video-from-playlist/:playlistId/:videoId", h.RemoveVideo)
	playlist.Patch("/update-playlist/:playlistId", h.Update)
	playlist.Delete("/delete-playlist/:playlistId", h.Delete)
}
