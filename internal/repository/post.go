package repository

import (
	"context"
	"errors"

	"wayfarer/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	// Mutate applies fn to the current post and persists the result
	// atomically with respect to other Mutate calls on the same post.
	Mutate(ctx context.Context, id uint, fn func(*models.Post) error) (*models.Post, error)
}

type postRepository struct {
	db         *gorm.DB
	maxRetries int
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB, maxRetries int) PostRepository {
	return &postRepository{db: db, maxRetries: maxRetries}
}

// List returns every post, newest first.
func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.Version = 1
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) Mutate(ctx context.Context, id uint, fn func(*models.Post) error) (*models.Post, error) {
	load := func(ctx context.Context) (*models.Post, error) {
		return r.GetByID(ctx, id)
	}
	return mutate(ctx, r.db, "posts", r.maxRetries, load, fn)
}
