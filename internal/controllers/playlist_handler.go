package controllers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/dto"
	"github.com/pllus/videotube/internal/middleware"
	"github.com/pllus/videotube/internal/services"
	"github.com/pllus/videotube/utils"
)

type PlaylistHandler struct {
	Service *services.PlaylistService
	Timeout time.Duration
}

func idParam(c *fiber.Ctx, name, label string) (bson.ObjectID, error) {
	oid, err := utils.Oid(c.Params(name))
	if err != nil {
		return bson.NilObjectID, utils.BadRequest("Invalid " + label + " id")
	}
	return oid, nil
}

// Create godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePlaylistReq  true  "Name and description"
// @Success      200  {object}  dto.APIResponse{data=models.Playlist}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/create-playlist [post]
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	owner, _ := middleware.UIDObjectID(c)

	var body dto.CreatePlaylistReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	p, err := h.Service.Create(ctx, services.CreatePlaylistInput{
		Name:        body.Name,
		Description: body.Description,
		Owner:       owner,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, p, "Playlist created successfully"))
}

// GetUserPlaylists godoc
// @Summary      List your playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.APIResponse{data=[]models.Playlist}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/get-all-playlists [get]
func (h *PlaylistHandler) GetUserPlaylists(c *fiber.Ctx) error {
	owner, _ := middleware.UIDObjectID(c)

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	items, err := h.Service.ListForUser(ctx, owner)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, items, "Playlists fetched successfully"))
}

// GetByID godoc
// @Summary      Get a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Success      200  {object}  dto.APIResponse{data=models.Playlist}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/get-playlist/{playlistId} [get]
func (h *PlaylistHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c, "playlistId", "playlist")
	if err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	p, err := h.Service.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, p, "Playlist fetched successfully"))
}

func (h *PlaylistHandler) videoInput(c *fiber.Ctx) (services.PlaylistVideoInput, error) {
	pid, err := idParam(c, "playlistId", "playlist")
	if err != nil {
		return services.PlaylistVideoInput{}, err
	}
	vid, err := idParam(c, "videoId", "video")
	if err != nil {
		return services.PlaylistVideoInput{}, err
	}
	owner, _ := middleware.UIDObjectID(c)
	return services.PlaylistVideoInput{PlaylistID: pid, VideoID: vid, Owner: owner}, nil
}

// AddVideo godoc
// @Summary      Add a video to your playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Param        videoId     path  string  true  "Video ID (hex ObjectID)"
// @Success      200  {object}  dto.APIResponse{data=models.Playlist}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/add-video-to-playlist/{playlistId}/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	in, err := h.videoInput(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	p, err := h.Service.AddVideo(ctx, in)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, p, "Video added to playlist"))
}

// RemoveVideo godoc
// @Summary      Remove a video from your playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Param        videoId     path  string  true  "Video ID (hex ObjectID)"
// @Success      200  {object}  dto.APIResponse{data=models.Playlist}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/remove-video-from-playlist/{playlistId}/{videoId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	in, err := h.videoInput(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	p, err := h.Service.RemoveVideo(ctx, in)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, p, "Video removed from playlist"))
}

// Update godoc
// @Summary      Rename or redescribe your playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string                 true  "Playlist ID (hex ObjectID)"
// @Param        body        body  dto.UpdatePlaylistReq  true  "Fields to change"
// @Success      200  {object}  dto.APIResponse{data=models.Playlist}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/update-playlist/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "playlistId", "playlist")
	if err != nil {
		return err
	}
	var body dto.UpdatePlaylistReq
	if err := parseBody(c, &body); err != nil {
		return err
	}
	owner, _ := middleware.UIDObjectID(c)

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	p, err := h.Service.Update(ctx, services.UpdatePlaylistInput{
		PlaylistID:  id,
		Owner:       owner,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, p, "Playlist updated successfully"))
}

// Delete godoc
// @Summary      Delete your playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Success      200  {object}  dto.APIResponse{data=dto.DeletedResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/playlist/delete-playlist/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "playlistId", "playlist")
	if err != nil {
		return err
	}
	owner, _ := middleware.UIDObjectID(c)

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	if err := h.Service.Delete(ctx, services.OwnedPlaylistInput{PlaylistID: id, Owner: owner}); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, dto.DeletedResp{Deleted: true}, "Playlist deleted successfully"))
}
