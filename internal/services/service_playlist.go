package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/internal/models"
	"github.com/pllus/videotube/utils"
)

const (
	MsgPlaylistNotFound = "Playlist not found"
	MsgVideoNotFound    = "Video not found"
)

type PlaylistStore interface {
	Create(ctx context.Context, p *models.Playlist) (*models.Playlist, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]models.Playlist, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error)
	AddVideo(ctx context.Context, id, owner, videoID bson.ObjectID) (*models.Playlist, error)
	RemoveVideo(ctx context.Context, id, owner, videoID bson.ObjectID) (*models.Playlist, error)
	Update(ctx context.Context, id, owner bson.ObjectID, patch models.PlaylistPatch) (*models.Playlist, error)
	Delete(ctx context.Context, id, owner bson.ObjectID) (bool, error)
}

type VideoLookup interface {
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}

type PlaylistService struct {
	Playlists PlaylistStore
	Videos    VideoLookup
}

type CreatePlaylistInput struct {
	Name        string        `json:"name"        validate:"required,notblank,max=100"`
	Description string        `json:"description" validate:"required,notblank,max=1000"`
	Owner       bson.ObjectID `json:"owner"       validate:"required"`
}

type PlaylistVideoInput struct {
	PlaylistID bson.ObjectID `json:"playlistId" validate:"required"`
	VideoID    bson.ObjectID `json:"videoId"    validate:"required"`
	Owner      bson.ObjectID `json:"owner"      validate:"required"`
}

type UpdatePlaylistInput struct {
	PlaylistID  bson.ObjectID `json:"playlistId"  validate:"required"`
	Owner       bson.ObjectID `json:"owner"       validate:"required"`
	Name        *string       `json:"name"        validate:"omitnil,notblank,max=100"`
	Description *string       `json:"description" validate:"omitnil,notblank,max=1000"`
}

type OwnedPlaylistInput struct {
	PlaylistID bson.ObjectID `json:"playlistId" validate:"required"`
	Owner      bson.ObjectID `json:"owner"      validate:"required"`
}

func (s *PlaylistService) Create(ctx context.Context, in CreatePlaylistInput) (*models.Playlist, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	return s.Playlists.Create(ctx, &models.Playlist{
		Name:        in.Name,
		Description: in.Description,
		Owner:       in.Owner,
	})
}

func (s *PlaylistService) ListForUser(ctx context.Context, owner bson.ObjectID) ([]models.Playlist, error) {
	if owner.IsZero() {
		return nil, utils.BadRequest(utils.MsgFieldsRequired)
	}
	return s.Playlists.ListByOwner(ctx, owner)
}

func (s *PlaylistService) Get(ctx context.Context, id bson.ObjectID) (*models.Playlist, error) {
	if id.IsZero() {
		return nil, utils.BadRequest(utils.MsgFieldsRequired)
	}
	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.BadRequest(MsgPlaylistNotFound)
	}
	return p, nil
}

// AddVideo is idempotent: a video already in the playlist is left in place.
func (s *PlaylistService) AddVideo(ctx context.Context, in PlaylistVideoInput) (*models.Playlist, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	ok, err := s.Videos.Exists(ctx, in.VideoID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.BadRequest(MsgVideoNotFound)
	}
	return notFoundIfNil(s.Playlists.AddVideo(ctx, in.PlaylistID, in.Owner, in.VideoID))
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, in PlaylistVideoInput) (*models.Playlist, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	return notFoundIfNil(s.Playlists.RemoveVideo(ctx, in.PlaylistID, in.Owner, in.VideoID))
}

func (s *PlaylistService) Update(ctx context.Context, in UpdatePlaylistInput) (*models.Playlist, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Name == nil && in.Description == nil {
		return nil, utils.BadRequest(utils.MsgFieldsRequired, "name or description is required")
	}
	return notFoundIfNil(s.Playlists.Update(ctx, in.PlaylistID, in.Owner, models.PlaylistPatch{
		Name:        in.Name,
		Description: in.Description,
	}))
}

func (s *PlaylistService) Delete(ctx context.Context, in OwnedPlaylistInput) error {
	if err := utils.ValidateStruct(in); err != nil {
		return err
	}
	ok, err := s.Playlists.Delete(ctx, in.PlaylistID, in.Owner)
	if err != nil {
		return err
	}
	if !ok {
		return utils.BadRequest(MsgPlaylistNotFound)
	}
	return nil
}

// Playlists owned by someone else are reported the same as missing ones.
func notFoundIfNil(p *models.Playlist, err error) (*models.Playlist, error) {
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.BadRequest(MsgPlaylistNotFound)
	}
	return p, nil
}
