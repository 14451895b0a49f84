package repository

import (
	"context"
	"testing"
	"time"

	"wayfarer/internal/models"
	"wayfarer/internal/nested"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(userID uint, username string) *models.Profile {
	return &models.Profile{
		UserID:          userID,
		Username:        username,
		BirthDate:       time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		CurrentLocation: "Lisbon",
		Gender:          models.GenderOther,
	}
}

func TestProfileRepository_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db, DefaultMaxRetries)
	ctx := context.Background()

	ann := createUser(t, db, "Ann", "ann@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")

	profile := newProfile(ann.ID, "ann")
	require.NoError(t, repo.Create(ctx, profile))
	require.NotNil(t, profile.User)
	assert.Equal(t, "Ann", profile.User.Name)
	assert.Empty(t, profile.User.Email)
	assert.NotNil(t, profile.TravelPlans)

	got, err := repo.GetByUserID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Username)

	byName, err := repo.FindByUsername(ctx, "ann")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, ann.ID, byName.UserID)

	missing, err := repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.GetByUserID(ctx, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("username is unique", func(t *testing.T) {
		err := repo.Create(ctx, newProfile(bob.ID, "ann"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("one profile per user", func(t *testing.T) {
		err := repo.Create(ctx, newProfile(ann.ID, "ann2"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestProfileRepository_Mutate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db, DefaultMaxRetries)
	ctx := context.Background()

	ann := createUser(t, db, "Ann", "ann@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")
	require.NoError(t, repo.Create(ctx, newProfile(ann.ID, "ann")))
	require.NoError(t, repo.Create(ctx, newProfile(bob.ID, "bob")))

	updated, err := repo.Mutate(ctx, ann.ID, func(p *models.Profile) error {
		p.Bio = "Backpacker"
		p.Social.Twitter = "https://twitter.com/ann"
		p.LearningLanguages = nested.Append(p.LearningLanguages, models.LearningLanguage{
			ID: nested.NewID(), Language: "Spanish", Level: models.LevelBeginner,
		})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.User.Name)

	stored, err := repo.GetByUserID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backpacker", stored.Bio)
	assert.Equal(t, "https://twitter.com/ann", stored.Social.Twitter)
	require.Len(t, stored.LearningLanguages, 1)
	assert.Equal(t, models.LevelBeginner, stored.LearningLanguages[0].Level)

	t.Run("renaming onto a taken username fails", func(t *testing.T) {
		_, err := repo.Mutate(ctx, ann.ID, func(p *models.Profile) error {
			p.Username = "bob"
			return nil
		})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("owner is untouched by profile writes", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.First(&user, ann.ID).Error)
		assert.Equal(t, "ann@example.com", user.Email)
	})
}
