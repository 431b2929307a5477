package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"github.com/prperemyshlev/localmaps-api/internal/repository"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.Token]; ok {
		return repository.ErrDuplicateSession
	}
	session.ID = uuid.New().String()
	cp := *session
	r.sessions[session.Token] = &cp
	return nil
}

func (r *memSessionRepo) GetActiveByToken(_ context.Context, token string, now time.Time) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || !s.IsValidAt(now) {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) DeleteByToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

type memFavoriteRepo struct {
	mu        sync.Mutex
	favorites []*domain.Favorite
	seq       int
	err       error
}

func (r *memFavoriteRepo) Create(_ context.Context, fav *domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, f := range r.favorites {
		if f.UserID == fav.UserID && f.PlaceID == fav.PlaceID {
			return repository.ErrDuplicateFavorite
		}
	}
	r.seq++
	fav.ID = uuid.New().String()
	fav.CreatedAt = time.Unix(int64(r.seq), 0).UTC()
	r.favorites = append(r.favorites, fav)
	return nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, userID, placeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.favorites {
		if f.UserID == userID && f.PlaceID == placeID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memFavoriteRepo) ListByUserID(_ context.Context, userID string) ([]*domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Favorite, 0)
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memFavoriteRepo) Exists(_ context.Context, userID, placeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.favorites {
		if f.UserID == userID && f.PlaceID == placeID {
			return true, nil
		}
	}
	return false, nil
}

type stubPlaces struct {
	places       []domain.Place
	details      json.RawMessage
	detailsSeq   []json.RawMessage
	err          error
	searchCalls  int
	detailsCalls int
}

func (s *stubPlaces) SearchPlaces(_ context.Context, _ string, _, _ float64) ([]domain.Place, error) {
	s.searchCalls++
	return s.places, s.err
}

func (s *stubPlaces) GetPlaceDetails(_ context.Context, _ string) (json.RawMessage, error) {
	s.detailsCalls++
	if len(s.detailsSeq) > 0 {
		next := s.detailsSeq[0]
		s.detailsSeq = s.detailsSeq[1:]
		return next, s.err
	}
	return s.details, s.err
}

type stubFilter struct {
	calls int
	keep  int
}

func (f *stubFilter) FilterSmallBusinesses(_ context.Context, places []domain.Place, _ string) []domain.Place {
	f.calls++
	if f.keep < len(places) {
		return places[:f.keep]
	}
	return places
}

type memDetailsCache struct {
	entries map[string]json.RawMessage
	readErr error
}

func (c *memDetailsCache) Get(_ context.Context, placeID string) (json.RawMessage, bool, error) {
	if c.readErr != nil {
		return nil, false, c.readErr
	}
	v, ok := c.entries[placeID]
	return v, ok, nil
}

func (c *memDetailsCache) Set(_ context.Context, placeID string, payload json.RawMessage) error {
	if c.entries == nil {
		c.entries = make(map[string]json.RawMessage)
	}
	c.entries[placeID] = payload
	return nil
}

var errBoom = errors.New("boom")
