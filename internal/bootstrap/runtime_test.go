package bootstrap

import (
	"bytes"
	"context"
	"testing"

	"wayfarer/internal/config"
	"wayfarer/internal/middleware"
	"wayfarer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRuntime(t *testing.T) {
	middleware.InitLogger("test", &bytes.Buffer{})
	ctx := context.Background()

	tests := []struct {
		name      string
		env       string
		opts      Options
		wantUsers int64
	}{
		{"no seeding", "development", Options{}, 0},
		{"seeds an empty development database", "development", Options{SeedDemoData: true, DemoUsers: 2, DemoPosts: 1}, 2},
		{"never seeds production", "production", Options{SeedDemoData: true, DemoUsers: 2, DemoPosts: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Env: tt.env, DBDriver: "sqlite", DBSQLitePath: ":memory:", BcryptCost: 4}

			db, rdb, err := InitRuntime(ctx, cfg, tt.opts)
			require.NoError(t, err)
			assert.Nil(t, rdb)
			t.Cleanup(func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			})

			var users int64
			require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
			assert.Equal(t, tt.wantUsers, users)
		})
	}
}
