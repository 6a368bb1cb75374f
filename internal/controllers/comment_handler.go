package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/dto"
	"github.com/pllus/videotube/internal/middleware"
	"github.com/pllus/videotube/internal/services"
	"github.com/pllus/videotube/utils"
)

type CommentHandler struct {
	Service *services.CommentService
	Timeout time.Duration
}

// optional commentId from the body; blank means address by content
func commentIDFrom(raw string) (bson.ObjectID, error) {
	if strings.TrimSpace(raw) == "" {
		return bson.NilObjectID, nil
	}
	oid, err := utils.Oid(raw)
	if err != nil {
		return bson.NilObjectID, utils.BadRequest("Invalid comment id")
	}
	return oid, nil
}

// GetAll godoc
// @Summary      List comments of a video
// @Description  Page through a video's comments in insertion order. Only content is returned.
// @Tags         comments
// @Produce      json
// @Param        videoId  path   string  true  "Video ID (hex ObjectID)"
// @Param        page     query  int     true  "Page number, starting at 1"
// @Param        limit    query  int     true  "Page size (max 100)"
// @Success      200  {object}  dto.APIResponse{data=[]models.CommentContent}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/{videoId} [get]
func (h *CommentHandler) GetAll(c *fiber.Ctx) error {
	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	page, err := h.Service.List(ctx, services.ListCommentsInput{
		VideoID: middleware.VideoIDFrom(c),
		Page:    c.Query("page"),
		Limit:   c.Query("limit"),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, page.Docs, "All comments fetched successfully"))
}

// Add godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string             true  "Video ID (hex ObjectID)"
// @Param        body     body  dto.AddCommentReq  true  "Comment content"
// @Success      200  {object}  dto.APIResponse{data=dto.CommentedResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/{videoId} [post]
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	owner, _ := middleware.UIDObjectID(c)

	var body dto.AddCommentReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	if _, err := h.Service.Add(ctx, services.AddCommentInput{
		Content: body.Content,
		VideoID: middleware.VideoIDFrom(c),
		Owner:   owner,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, dto.CommentedResp{Commented: true}, "Commented successfully"))
}

// Update godoc
// @Summary      Edit one of your comments
// @Description  Matches your comment on the video by oldContent (oldest first on duplicates) or by commentId when given.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string                true  "Video ID (hex ObjectID)"
// @Param        body     body  dto.UpdateCommentReq  true  "Old and new content"
// @Success      200  {object}  dto.APIResponse{data=models.Comment}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/{videoId} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	owner, _ := middleware.UIDObjectID(c)

	var body dto.UpdateCommentReq
	if err := parseBody(c, &body); err != nil {
		return err
	}
	cid, err := commentIDFrom(body.CommentID)
	if err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	updated, err := h.Service.Update(ctx, services.UpdateCommentInput{
		CommentID:  cid,
		OldContent: body.OldContent,
		Content:    body.Content,
		VideoID:    middleware.VideoIDFrom(c),
		Owner:      owner,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, updated, "Comment updated"))
}

// Delete godoc
// @Summary      Delete one of your comments
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string                true  "Video ID (hex ObjectID)"
// @Param        body     body  dto.DeleteCommentReq  true  "Content (or commentId) of the comment"
// @Success      200  {object}  dto.APIResponse{data=dto.DeletedResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/{videoId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	owner, _ := middleware.UIDObjectID(c)

	var body dto.DeleteCommentReq
	if err := parseBody(c, &body); err != nil {
		return err
	}
	cid, err := commentIDFrom(body.CommentID)
	if err != nil {
		return err
	}

	ctx, cancel := requestCtx(c, h.Timeout)
	defer cancel()

	if _, err := h.Service.Delete(ctx, services.DeleteCommentInput{
		CommentID: cid,
		Content:   body.Content,
		VideoID:   middleware.VideoIDFrom(c),
		Owner:     owner,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewAPIResponse(http.StatusOK, dto.DeletedResp{Deleted: true}, "Comment deleted successfully"))
}
