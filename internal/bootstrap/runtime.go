// Package bootstrap wires the process-level dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"wayfarer/internal/config"
	"wayfarer/internal/database"
	"wayfarer/internal/models"
	"wayfarer/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData fills an empty development database with fake travellers.
	SeedDemoData bool
	DemoUsers    int
	DemoPosts    int
}

// InitRuntime connects to the database and Redis and optionally seeds demo data.
// The Redis client is nil when REDIS_URL is unset or the server is unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	var r *redis.Client
	if cfg.RedisURL != "" {
		r = database.ConnectRedis(cfg.RedisURL)
	}

	if opts.SeedDemoData {
		if err := seedDemoData(ctx, cfg, db, opts); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}

func seedDemoData(ctx context.Context, cfg *config.Config, db *gorm.DB, opts Options) error {
	if cfg.IsProduction() {
		log.Println("demo data seeding skipped in production")
		return nil
	}

	var users int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&users).Error; err != nil {
		return err
	}
	if users > 0 {
		return nil
	}

	if opts.DemoUsers <= 0 {
		opts.DemoUsers = 10
	}
	if opts.DemoPosts <= 0 {
		opts.DemoPosts = 30
	}

	log.Printf("seeding %d demo users and %d posts", opts.DemoUsers, opts.DemoPosts)
	return seed.Seed(ctx, db, seed.Options{
		NumUsers:   opts.DemoUsers,
		NumPosts:   opts.DemoPosts,
		BcryptCost: cfg.BcryptCost,
	})
}
