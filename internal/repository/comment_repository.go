package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/pllus/videotube/internal/models"
)

type CommentRepository struct {
	Col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{Col: db.Collection("comments")}
}

// CommentPagePipeline matches one video's comments in insertion order, keeps
// only their content and windows the result into page/limit with the total
// count alongside.
func CommentPagePipeline(videoID bson.ObjectID, page, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{{Key: "content", Value: 1}, {Key: "_id", Value: 0}}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "docs", Value: bson.A{
				bson.D{{Key: "$skip", Value: (page - 1) * limit}},
				bson.D{{Key: "$limit", Value: limit}},
			}},
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "count"}},
			}},
		}}},
	}
}

// CommentMatchFilter addresses a comment by id when one is given, otherwise
// by its exact content. Owner and video always take part in the match.
func CommentMatchFilter(m models.CommentMatch) bson.D {
	if !m.ID.IsZero() {
		return bson.D{
			{Key: "_id", Value: m.ID},
			{Key: "owner", Value: m.Owner},
			{Key: "video", Value: m.Video},
		}
	}
	return bson.D{
		{Key: "content", Value: m.Content},
		{Key: "owner", Value: m.Owner},
		{Key: "video", Value: m.Video},
	}
}

// oldest first, so duplicates resolve to the earliest comment
var byInsertion = bson.D{{Key: "_id", Value: 1}}

// CommentUpdateOptions picks the oldest match and returns it after the update.
func CommentUpdateOptions() *options.FindOneAndUpdateOptionsBuilder {
	return options.FindOneAndUpdate().
		SetSort(byInsertion).
		SetReturnDocument(options.After)
}

func CommentDeleteOptions() *options.FindOneAndDeleteOptionsBuilder {
	return options.FindOneAndDelete().SetSort(byInsertion)
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) (*models.CommentPage, error) {
	cur, err := r.Col.Aggregate(ctx, CommentPagePipeline(videoID, page, limit))
	if err != nil {
		return nil, errors.Wrap(err, "aggregate comments")
	}
	defer cur.Close(ctx)

	var faceted []struct {
		Docs  []models.CommentContent `bson:"docs"`
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
	}
	if err := cur.All(ctx, &faceted); err != nil {
		return nil, errors.Wrap(err, "decode comments page")
	}

	var (
		docs  []models.CommentContent
		total int64
	)
	if len(faceted) > 0 {
		docs = faceted[0].Docs
		if len(faceted[0].Total) > 0 {
			total = faceted[0].Total[0].Count
		}
	}
	return models.NewCommentPage(docs, total, page, limit), nil
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	now := time.Now().UTC()
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.Col.InsertOne(ctx, c)
	if err != nil {
		return nil, errors.Wrap(err, "insert comment")
	}
	if res == nil || res.InsertedID == nil {
		return nil, nil
	}
	return c, nil
}

// UpdateContent rewrites the matched comment and returns it, or nil when
// nothing matched.
func (r *CommentRepository) UpdateContent(ctx context.Context, m models.CommentMatch, content string) (*models.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}
	var c models.Comment
	err := r.Col.FindOneAndUpdate(ctx, CommentMatchFilter(m), update, CommentUpdateOptions()).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "update comment")
	}
	return &c, nil
}

// Delete removes the matched comment and returns it, or nil when nothing matched.
func (r *CommentRepository) Delete(ctx context.Context, m models.CommentMatch) (*models.Comment, error) {
	var c models.Comment
	err := r.Col.FindOneAndDelete(ctx, CommentMatchFilter(m), CommentDeleteOptions()).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "delete comment")
	}
	return &c, nil
}
