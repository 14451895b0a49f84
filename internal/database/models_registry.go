package database

import "wayfarer/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []any {
	return []any{
		&models.User{},
		&models.Profile{},
		&models.Post{},
	}
}
