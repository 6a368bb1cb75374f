package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type VideoRepository struct {
	Col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{Col: db.Collection("videos")}
}

func (r *VideoRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "count videos")
	}
	return n > 0, nil
}
