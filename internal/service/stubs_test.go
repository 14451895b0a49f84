package service

import (
	"context"
	"testing"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	findByEmailFn   func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	deleteAccountFn func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) DeleteAccount(ctx context.Context, id uint) error {
	return s.deleteAccountFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return nil, repository.ErrNotFound },
		findByEmailFn:   func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteAccountFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// profileRepoStub keeps profiles in memory; Mutate runs fn on a copy and
// stores it only when fn succeeds.
type profileRepoStub struct {
	profiles map[uint]*models.Profile
	createFn func(context.Context, *models.Profile) error
	mutateFn func(context.Context, uint, func(*models.Profile) error) (*models.Profile, error)
}

func newProfileRepoStub(profiles ...*models.Profile) *profileRepoStub {
	s := &profileRepoStub{profiles: map[uint]*models.Profile{}}
	for _, p := range profiles {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *profileRepoStub) List(_ context.Context) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (s *profileRepoStub) GetByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *profileRepoStub) FindByUsername(_ context.Context, username string) (*models.Profile, error) {
	for _, p := range s.profiles {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	if _, ok := s.profiles[profile.UserID]; ok {
		return repository.ErrDuplicate
	}
	cp := *profile
	s.profiles[profile.UserID] = &cp
	return nil
}

func (s *profileRepoStub) Mutate(ctx context.Context, userID uint, fn func(*models.Profile) error) (*models.Profile, error) {
	if s.mutateFn != nil {
		return s.mutateFn(ctx, userID, fn)
	}
	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	s.profiles[userID] = p
	return p, nil
}

// postRepoStub keeps posts in memory with the same Mutate contract.
type postRepoStub struct {
	posts    map[uint]*models.Post
	nextID   uint
	mutateFn func(context.Context, uint, func(*models.Post) error) (*models.Post, error)
}

func newPostRepoStub(posts ...*models.Post) *postRepoStub {
	s := &postRepoStub{posts: map[uint]*models.Post{}, nextID: 1}
	for _, p := range posts {
		s.posts[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *postRepoStub) List(_ context.Context) ([]*models.Post, error) {
	out := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	return out, nil
}

func (s *postRepoStub) GetByID(_ context.Context, id uint) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *postRepoStub) Create(_ context.Context, post *models.Post) error {
	post.ID = s.nextID
	s.nextID++
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (s *postRepoStub) Delete(_ context.Context, id uint) error {
	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *postRepoStub) Mutate(ctx context.Context, id uint, fn func(*models.Post) error) (*models.Post, error) {
	if s.mutateFn != nil {
		return s.mutateFn(ctx, id, fn)
	}
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	s.posts[id] = p
	return p, nil
}

// assertAppError checks the error kind, key and HTTP status.
func assertAppError(t *testing.T, err error, kind models.ErrorKind, key string, status int) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Code)
	assert.Equal(t, key, appErr.Key)
	assert.Equal(t, status, appErr.Status)
}
