package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	Owner     bson.ObjectID `json:"owner"     bson:"owner"`
	Video     bson.ObjectID `json:"video"     bson:"video"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

// CommentContent is the projected shape returned by the per-video listing.
type CommentContent struct {
	Content string `json:"content" bson:"content"`
}

// CommentMatch selects the one comment an update or delete applies to.
// A non-zero ID takes precedence over Content.
type CommentMatch struct {
	ID      bson.ObjectID
	Content string
	Owner   bson.ObjectID
	Video   bson.ObjectID
}

type CommentPage struct {
	Docs        []CommentContent `json:"docs"`
	TotalDocs   int64            `json:"totalDocs"`
	Limit       int64            `json:"limit"`
	Page        int64            `json:"page"`
	TotalPages  int64            `json:"totalPages"`
	HasPrevPage bool             `json:"hasPrevPage"`
	HasNextPage bool             `json:"hasNextPage"`
}

// NewCommentPage fills the derived paging fields from the window and total.
func NewCommentPage(docs []CommentContent, total, page, limit int64) *CommentPage {
	if docs == nil {
		docs = []CommentContent{}
	}
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &CommentPage{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}
}
