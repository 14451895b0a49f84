package repository

import (
	"context"
	"errors"

	"wayfarer/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles. Profiles are
// addressed by their owner's user id.
type ProfileRepository interface {
	List(ctx context.Context) ([]*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Mutate(ctx context.Context, userID uint, fn func(*models.Profile) error) (*models.Profile, error)
}

type profileRepository struct {
	db         *gorm.DB
	maxRetries int
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB, maxRetries int) ProfileRepository {
	return &profileRepository{db: db, maxRetries: maxRetries}
}

// withUser populates the owner's public fields.
func withUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "created_at")
	})
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := withUser(r.db.WithContext(ctx)).Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return r.first(ctx, "user_id = ?", userID)
}

// FindByUsername returns (nil, nil) when no profile has the username.
func (r *profileRepository) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	profile, err := r.first(ctx, "username = ?", username)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return profile, err
}

func (r *profileRepository) first(ctx context.Context, query string, arg any) (*models.Profile, error) {
	var profile models.Profile
	if err := withUser(r.db.WithContext(ctx)).Where(query, arg).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Create inserts profile and reloads it with its owner populated.
func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	profile.Version = 1
	if err := r.db.WithContext(ctx).Omit("User").Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicate
		}
		return err
	}

	stored, err := r.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	*profile = *stored
	return nil
}

func (r *profileRepository) Mutate(ctx context.Context, userID uint, fn func(*models.Profile) error) (*models.Profile, error) {
	load := func(ctx context.Context) (*models.Profile, error) {
		return r.GetByUserID(ctx, userID)
	}
	return mutate(ctx, r.db, "profiles", r.maxRetries, load, fn)
}
