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

type PlaylistRepository struct {
	Col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{Col: db.Collection("playlists")}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *models.Playlist) (*models.Playlist, error) {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.Videos == nil {
		p.Videos = []bson.ObjectID{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.Col.InsertOne(ctx, p); err != nil {
		return nil, errors.Wrap(err, "insert playlist")
	}
	return p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]models.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.Col.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find playlists")
	}
	defer cur.Close(ctx)

	items := []models.Playlist{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode playlists")
	}
	return items, nil
}

// FindByID returns nil when the playlist does not exist.
func (r *PlaylistRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error) {
	var p models.Playlist
	err := r.Col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find playlist")
	}
	return &p, nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, id, owner, videoID bson.ObjectID) (*models.Playlist, error) {
	return r.updateOwned(ctx, id, owner, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, owner, videoID bson.ObjectID) (*models.Playlist, error) {
	return r.updateOwned(ctx, id, owner, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) Update(ctx context.Context, id, owner bson.ObjectID, patch models.PlaylistPatch) (*models.Playlist, error) {
	set := bson.D{{Key: "updated_at", Value: time.Now().UTC()}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	return r.updateOwned(ctx, id, owner, bson.D{{Key: "$set", Value: set}})
}

// Delete reports whether an owned playlist was removed.
func (r *PlaylistRepository) Delete(ctx context.Context, id, owner bson.ObjectID) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, ownedFilter(id, owner))
	if err != nil {
		return false, errors.Wrap(err, "delete playlist")
	}
	return res.DeletedCount > 0, nil
}

func ownedFilter(id, owner bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
}

func (r *PlaylistRepository) updateOwned(ctx context.Context, id, owner bson.ObjectID, update bson.D) (*models.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Playlist
	err := r.Col.FindOneAndUpdate(ctx, ownedFilter(id, owner), update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "update playlist")
	}
	return &p, nil
}
