// Package seed fills a database with fake travellers, profiles and posts for
// development. Everything goes through the service layer, so seeded data
// obeys the same validation and uniqueness rules as real traffic.
package seed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wayfarer/internal/auth"
	"wayfarer/internal/models"
	"wayfarer/internal/repository"
	"wayfarer/internal/service"
	"wayfarer/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Password is shared by every seeded account.
const Password = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	BcryptCost  int
	// RandSeed makes a run reproducible; zero picks a time-based seed.
	RandSeed int64
}

// Seeder creates fake data through the services.
type Seeder struct {
	db       *gorm.DB
	faker    *gofakeit.Faker
	users    *service.UserService
	profiles *service.ProfileService
	posts    *service.PostService
}

func NewSeeder(db *gorm.DB, bcryptCost int, randSeed int64) *Seeder {
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}
	profileRepo := repository.NewProfileRepository(db, repository.DefaultMaxRetries)
	postRepo := repository.NewPostRepository(db, repository.DefaultMaxRetries)

	return &Seeder{
		db:       db,
		faker:    gofakeit.New(randSeed),
		users:    service.NewUserService(repository.NewUserRepository(db), nil, bcryptCost),
		profiles: service.NewProfileService(profileRepo),
		posts:    service.NewPostService(postRepo, profileRepo),
	}
}

// Seed populates the database with test data
func Seed(ctx context.Context, db *gorm.DB, opts Options) error {
	s := NewSeeder(db, opts.BcryptCost, opts.RandSeed)

	if opts.ShouldClean {
		if err := s.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
	}

	travellers, err := s.SeedTravellers(ctx, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d travellers created", len(travellers))

	posts, err := s.SeedPosts(ctx, travellers, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	return nil
}

// ClearAll removes every post, profile and user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Post{}, &models.Profile{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedTravellers registers n users, each with a complete profile.
func (s *Seeder) SeedTravellers(ctx context.Context, n int) ([]*auth.Identity, error) {
	out := make([]*auth.Identity, 0, n)
	for i := 0; i < n; i++ {
		first, last := s.faker.FirstName(), s.faker.LastName()
		handle := slug(first + last)

		user, err := s.users.Register(ctx, service.RegisterInput{
			Name:      clip(first+" "+last, 50),
			Email:     fmt.Sprintf("%s%d@example.com", clip(handle, 30), i),
			Password:  Password,
			ConfirmPW: Password,
		})
		if err != nil {
			return nil, err
		}

		if err := s.seedProfile(ctx, user.ID, fmt.Sprintf("%s%d", clip(handle, 40), i)); err != nil {
			return nil, err
		}

		out = append(out, &auth.Identity{ID: user.ID, Name: user.Name, Email: user.Email, Date: user.CreatedAt})
	}
	return out, nil
}

func (s *Seeder) seedProfile(ctx context.Context, userID uint, username string) error {
	f := s.faker
	birth := f.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))

	if _, err := s.profiles.UpsertRequired(ctx, userID, service.RequiredInfoInput{
		Username:        username,
		BirthDate:       birth.Format(validation.DateLayout),
		CurrentLocation: clip(padded(f.City()), 50),
		Gender:          f.RandomString([]string{"Male", "Female", "Other"}),
	}); err != nil {
		return err
	}

	if _, err := s.profiles.UpdateOptional(ctx, userID, service.OptionalInfoInput{
		Country:          models.Some(clip(f.Country(), 100)),
		Hometown:         models.Some(clip(padded(f.City()), 50)),
		Occupation:       models.Some(clip(padded(f.JobTitle()), 50)),
		Bio:              models.Some(clip(f.Paragraph(1, 3, 10, " "), 1000)),
		Interests:        models.Some(strings.Join([]string{f.Hobby(), f.Hobby()}, ", ")),
		FluentLanguages:  models.Some(f.Language()),
		Wishlist:         models.Some(strings.Join([]string{f.Country(), f.Country()}, ", ")),
		CountriesVisited: models.Some(f.Country()),
		Instagram:        models.Some("https://instagram.com/" + username),
	}); err != nil {
		return err
	}

	for i := 0; i < f.Number(0, 2); i++ {
		_, err := s.profiles.AddLearningLanguage(ctx, userID, service.LearningLanguageInput{
			Language: clip(padded(f.Language()), 50),
			Level:    f.RandomString([]string{"Beginner", "Elementary", "Intermediate", "Advanced"}),
		})
		if err != nil && !models.IsKind(err, models.KindValidation) {
			return err
		}
	}

	for i := 0; i < f.Number(0, 2); i++ {
		arrival := f.DateRange(time.Now(), time.Now().AddDate(1, 0, 0))
		if _, err := s.profiles.AddTravelPlan(ctx, userID, service.TravelPlanInput{
			Destination:       clip(padded(f.City()), 50),
			ArrivalDate:       arrival.Format(validation.DateLayout),
			DepartureDate:     arrival.AddDate(0, 0, f.Number(2, 21)).Format(validation.DateLayout),
			NumberOfTravelers: f.Number(1, 6),
			Description:       clip(f.Sentence(8), 300),
		}); err != nil {
			return err
		}
	}
	return nil
}

// SeedPosts spreads n posts over authors, then adds likes and comments from
// the other authors.
func (s *Seeder) SeedPosts(ctx context.Context, authors []*auth.Identity, n int) ([]*models.Post, error) {
	if len(authors) == 0 {
		return nil, nil
	}

	f := s.faker
	out := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := authors[f.Number(0, len(authors)-1)]
		post, err := s.posts.Create(ctx, author, service.CreatePostInput{Text: clip(f.Sentence(f.Number(4, 20)), 1000)})
		if err != nil {
			return nil, err
		}

		fans := append([]*auth.Identity(nil), authors...)
		f.ShuffleAnySlice(fans)
		for _, fan := range fans[:f.Number(0, len(fans)-1)] {
			if post, err = s.posts.Like(ctx, fan.ID, post.ID); err != nil {
				return nil, err
			}
		}
		for j := 0; j < f.Number(0, 3); j++ {
			commenter := authors[f.Number(0, len(authors)-1)]
			if post, err = s.posts.AddComment(ctx, commenter, post.ID, service.CommentInput{Text: clip(f.Sentence(6), 300)}); err != nil {
				return nil, err
			}
		}
		out = append(out, post)
	}
	return out, nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n])
}

// slug keeps only lowercase ASCII letters and digits.
func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, s)
}

// padded keeps generated place names above the three-character minimum.
func padded(s string) string {
	if len(strings.TrimSpace(s)) < 3 {
		return s + " City"
	}
	return s
}
