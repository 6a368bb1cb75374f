package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes every façade query relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// list by video in insertion order, and the content-keyed update/delete match
	if _, err := db.Collection("comments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "video", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("video_id"),
		},
		{
			Keys:    bson.D{{Key: "video", Value: 1}, {Key: "owner", Value: 1}, {Key: "content", Value: 1}},
			Options: options.Index().SetName("video_owner_content"),
		},
	}); err != nil {
		return errors.Wrap(err, "comments indexes")
	}

	if _, err := db.Collection("playlists").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("owner_created_at"),
	}); err != nil {
		return errors.Wrap(err, "playlists indexes")
	}

	if _, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
	}); err != nil {
		return errors.Wrap(err, "users indexes")
	}
	return nil
}
