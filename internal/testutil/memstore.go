// Package testutil holds in-memory stores that satisfy the service interfaces,
// so façades can be exercised end to end without a MongoDB server.
package testutil

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/internal/models"
	"github.com/pllus/videotube/internal/repository"
)

// ErrStoreDown is what stores return once Fail is set.
var ErrStoreDown = errors.New("store unavailable")

type Comments struct {
	mu   sync.Mutex
	docs []models.Comment // insertion order
	Fail bool
}

func (s *Comments) All() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Comment(nil), s.docs...)
}

func (s *Comments) ListByVideo(_ context.Context, videoID bson.ObjectID, page, limit int64) (*models.CommentPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}

	var matched []models.CommentContent
	for _, c := range s.docs {
		if c.Video == videoID {
			matched = append(matched, models.CommentContent{Content: c.Content})
		}
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return models.NewCommentPage(matched[start:end], total, page, limit), nil
}

func (s *Comments) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	now := time.Now().UTC()
	c.ID = bson.NewObjectID()
	c.CreatedAt, c.UpdatedAt = now, now
	s.docs = append(s.docs, *c)
	return c, nil
}

func (s *Comments) find(m models.CommentMatch) int {
	for i, c := range s.docs {
		if c.Owner != m.Owner || c.Video != m.Video {
			continue
		}
		if !m.ID.IsZero() {
			if c.ID == m.ID {
				return i
			}
			continue
		}
		if c.Content == m.Content {
			return i
		}
	}
	return -1
}

func (s *Comments) UpdateContent(_ context.Context, m models.CommentMatch, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	i := s.find(m)
	if i < 0 {
		return nil, nil
	}
	s.docs[i].Content = content
	s.docs[i].UpdatedAt = time.Now().UTC()
	c := s.docs[i]
	return &c, nil
}

func (s *Comments) Delete(_ context.Context, m models.CommentMatch) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	i := s.find(m)
	if i < 0 {
		return nil, nil
	}
	c := s.docs[i]
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	return &c, nil
}

type Videos struct {
	mu  sync.Mutex
	ids map[bson.ObjectID]bool
}

func NewVideos(ids ...bson.ObjectID) *Videos {
	v := &Videos{ids: map[bson.ObjectID]bool{}}
	for _, id := range ids {
		v.ids[id] = true
	}
	return v
}

func (v *Videos) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ids[id], nil
}

type Playlists struct {
	mu   sync.Mutex
	docs map[bson.ObjectID]*models.Playlist
	// Now stamps created_at/updated_at; time.Now when nil.
	Now func() time.Time
}

func (s *Playlists) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func NewPlaylists() *Playlists {
	return &Playlists{docs: map[bson.ObjectID]*models.Playlist{}}
}

func clonePlaylist(p *models.Playlist) *models.Playlist {
	cp := *p
	cp.Videos = append([]bson.ObjectID{}, p.Videos...)
	return &cp
}

func (s *Playlists) Create(_ context.Context, p *models.Playlist) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p.ID = bson.NewObjectID()
	if p.Videos == nil {
		p.Videos = []bson.ObjectID{}
	}
	p.CreatedAt, p.UpdatedAt = now, now
	s.docs[p.ID] = clonePlaylist(p)
	return p, nil
}

func (s *Playlists) ListByOwner(_ context.Context, owner bson.ObjectID) ([]models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Playlist{}
	for _, p := range s.docs {
		if p.Owner == owner {
			out = append(out, *clonePlaylist(p))
		}
	}
	// ObjectIDs grow with creation time, so this is newest first.
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() > out[j].ID.Hex() })
	return out, nil
}

func (s *Playlists) FindByID(_ context.Context, id bson.ObjectID) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.docs[id]
	if !ok {
		return nil, nil
	}
	return clonePlaylist(p), nil
}

func (s *Playlists) owned(id, owner bson.ObjectID) *models.Playlist {
	p, ok := s.docs[id]
	if !ok || p.Owner != owner {
		return nil
	}
	return p
}

func (s *Playlists) AddVideo(_ context.Context, id, owner, videoID bson.ObjectID) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.owned(id, owner)
	if p == nil {
		return nil, nil
	}
	p.UpdatedAt = s.now()
	for _, v := range p.Videos {
		if v == videoID {
			return clonePlaylist(p), nil
		}
	}
	p.Videos = append(p.Videos, videoID)
	return clonePlaylist(p), nil
}

func (s *Playlists) RemoveVideo(_ context.Context, id, owner, videoID bson.ObjectID) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.owned(id, owner)
	if p == nil {
		return nil, nil
	}
	kept := p.Videos[:0]
	for _, v := range p.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	p.UpdatedAt = s.now()
	return clonePlaylist(p), nil
}

func (s *Playlists) Update(_ context.Context, id, owner bson.ObjectID, patch models.PlaylistPatch) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.owned(id, owner)
	if p == nil {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = s.now()
	return clonePlaylist(p), nil
}

func (s *Playlists) Delete(_ context.Context, id, owner bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owned(id, owner) == nil {
		return false, nil
	}
	delete(s.docs, id)
	return true, nil
}

type Users struct {
	mu   sync.Mutex
	docs []models.User
}

func (s *Users) Create(_ context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range s.docs {
		if existing.Email == u.Email || existing.Username == u.Username {
			return nil, repository.ErrDuplicateUser
		}
	}
	u.ID = bson.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	s.docs = append(s.docs, *u)
	return u, nil
}

func (s *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.docs {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}
