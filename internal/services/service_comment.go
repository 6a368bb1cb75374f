package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/config"
	"github.com/pllus/videotube/internal/models"
	"github.com/pllus/videotube/utils"
)

const MsgCommentNotFound = "Comment not found"

type CommentStore interface {
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) (*models.CommentPage, error)
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	UpdateContent(ctx context.Context, m models.CommentMatch, content string) (*models.Comment, error)
	Delete(ctx context.Context, m models.CommentMatch) (*models.Comment, error)
}

type CommentService struct {
	Store CommentStore
}

// Every comment input shares one rule: present and not blank.

type ListCommentsInput struct {
	VideoID bson.ObjectID `json:"videoId" validate:"required"`
	Page    string        `json:"page"    validate:"required,notblank"`
	Limit   string        `json:"limit"   validate:"required,notblank"`
}

type AddCommentInput struct {
	Content string        `json:"content" validate:"required,notblank"`
	VideoID bson.ObjectID `json:"videoId" validate:"required"`
	Owner   bson.ObjectID `json:"owner"   validate:"required"`
}

type UpdateCommentInput struct {
	CommentID  bson.ObjectID `json:"commentId"`
	OldContent string        `json:"oldContent" validate:"required_without=CommentID,omitempty,notblank"`
	Content    string        `json:"content"    validate:"required,notblank"`
	VideoID    bson.ObjectID `json:"videoId"    validate:"required"`
	Owner      bson.ObjectID `json:"owner"      validate:"required"`
}

type DeleteCommentInput struct {
	CommentID bson.ObjectID `json:"commentId"`
	Content   string        `json:"content" validate:"required_without=CommentID,omitempty,notblank"`
	VideoID   bson.ObjectID `json:"videoId" validate:"required"`
	Owner     bson.ObjectID `json:"owner"   validate:"required"`
}

// List returns one page of a video's comments, content only.
func (s *CommentService) List(ctx context.Context, in ListCommentsInput) (*models.CommentPage, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	page, err := positiveInt(in.Page)
	if err != nil {
		return nil, utils.BadRequest("page must be a positive integer")
	}
	limit, err := positiveInt(in.Limit)
	if err != nil {
		return nil, utils.BadRequest("limit must be a positive integer")
	}
	if limit > config.MaxLimitComments {
		limit = config.MaxLimitComments
	}
	// (page-1)*limit becomes the $skip and must stay within int64
	if page-1 > math.MaxInt64/limit {
		return nil, utils.BadRequest("page is out of range")
	}
	return s.Store.ListByVideo(ctx, in.VideoID, page, limit)
}

func (s *CommentService) Add(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	c, err := s.Store.Create(ctx, &models.Comment{
		Content: in.Content,
		Owner:   in.Owner,
		Video:   in.VideoID,
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.BadRequest(MsgCommentNotFound)
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	c, err := s.Store.UpdateContent(ctx, models.CommentMatch{
		ID:      in.CommentID,
		Content: in.OldContent,
		Owner:   in.Owner,
		Video:   in.VideoID,
	}, in.Content)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.BadRequest(MsgCommentNotFound)
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, in DeleteCommentInput) (*models.Comment, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	c, err := s.Store.Delete(ctx, models.CommentMatch{
		ID:      in.CommentID,
		Content: in.Content,
		Owner:   in.Owner,
		Video:   in.VideoID,
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.BadRequest(MsgCommentNotFound)
	}
	return c, nil
}

func positiveInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
