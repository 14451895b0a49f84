package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"wayfarer/internal/auth"
	"wayfarer/internal/models"
	"wayfarer/internal/nested"
	"wayfarer/internal/observability"
	"wayfarer/internal/repository"
	"wayfarer/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

type CreatePostInput struct {
	Text string `json:"text" validate:"required,min=2,max=1000"`
}

type CommentInput struct {
	Text string `json:"text" validate:"required,min=1,max=300"`
}

func NewPostService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(posts) == 0 {
		return nil, models.NewNotFoundError(KeyNoPosts, "No posts found")
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fromRepo(err, errPostNotFound)
	}
	return post, nil
}

// Create publishes a post, copying the author's name, username and gender onto it.
func (s *PostService) Create(ctx context.Context, author *auth.Identity, in CreatePostInput) (*models.Post, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := firstInvalid(KeyInput, validation.Struct(in)); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, author.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotAuthorizedError(KeyNoProfile, "Please create a profile before posting")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	post := &models.Post{
		UserID:   author.ID,
		Text:     in.Text,
		Name:     author.Name,
		Username: profile.Username,
		Gender:   profile.Gender,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// Delete removes a post owned by userID.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return errNotAuthorized()
	}
	return fromRepo(s.postRepo.Delete(ctx, postID), errPostNotFound)
}

// Like adds userID's like. A user can like a post at most once.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.Mutate(ctx, postID, func(p *models.Post) error {
		if p.HasLiked(userID) {
			return models.NewConflictError(KeyAlreadyLiked, "User already liked this post").
				WithStatus(fiber.StatusUnauthorized)
		}
		p.Likes = nested.Append(p.Likes, models.Like{ID: nested.NewID(), UserID: userID})
		return nil
	})
	observability.RecordMutation("likes", "add", err)
	return post, fromRepo(err, errPostNotFound)
}

// Unlike removes userID's like.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.Mutate(ctx, postID, func(p *models.Post) error {
		likeID, ok := p.LikeIDFor(userID)
		if !ok {
			return models.NewNotFoundError(KeyNotLiked, "You have not yet liked this post").
				WithStatus(fiber.StatusBadRequest)
		}
		p.Likes, _ = nested.Remove(p.Likes, likeID)
		return nil
	})
	observability.RecordMutation("likes", "remove", err)
	return post, fromRepo(err, errPostNotFound)
}

// AddComment puts a new comment first. The commenter needs a profile.
func (s *PostService) AddComment(ctx context.Context, author *auth.Identity, postID uint, in CommentInput) (*models.Post, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := firstInvalid(KeyInput, validation.Struct(in)); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, author.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError(KeyNoProfile, "Please create a profile before commenting")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	comment := models.Comment{
		ID:        nested.NewID(),
		UserID:    author.ID,
		Text:      in.Text,
		Name:      author.Name,
		Username:  profile.Username,
		CreatedAt: s.now(),
	}

	post, err := s.postRepo.Mutate(ctx, postID, func(p *models.Post) error {
		p.Comments = nested.Prepend(p.Comments, comment)
		return nil
	})
	observability.RecordMutation("comments", "add", err)
	return post, fromRepo(err, errPostNotFound)
}

// DeleteComment removes a comment written by userID.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID uint, commentID string) (*models.Post, error) {
	post, err := s.postRepo.Mutate(ctx, postID, func(p *models.Post) error {
		comment, ok := nested.Find(p.Comments, commentID)
		if !ok {
			return models.NewNotFoundError(KeyCommentNotFound, "Comment does not exist")
		}
		if comment.UserID != userID {
			return errNotAuthorized()
		}
		p.Comments, _ = nested.Remove(p.Comments, commentID)
		return nil
	})
	observability.RecordMutation("comments", "remove", err)
	return post, fromRepo(err, errPostNotFound)
}
