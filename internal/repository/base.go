// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"wayfarer/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrConcurrentUpdate is returned when a read-modify-write cycle kept
	// losing to concurrent writers until its retries ran out.
	ErrConcurrentUpdate = errors.New("concurrent update")
)

// DefaultMaxRetries bounds the read-modify-write attempts of Mutate.
const DefaultMaxRetries = 5

// versioned is a row guarded by an optimistic version counter.
type versioned interface {
	GetVersion() uint
	SetVersion(uint)
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505, SQLite "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// saveVersioned writes every column of doc only if the stored version still
// matches the one doc was loaded with. It reports false when another writer
// got there first; doc's version is left untouched in that case.
func saveVersioned(ctx context.Context, db *gorm.DB, doc versioned) (bool, error) {
	prev := doc.GetVersion()
	doc.SetVersion(prev + 1)

	res := db.WithContext(ctx).
		Model(doc).
		Where("version = ?", prev).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(doc)
	if res.Error != nil || res.RowsAffected == 0 {
		doc.SetVersion(prev)
		return false, res.Error
	}
	return true, nil
}

// mutate loads a row, applies fn and saves it with a version check, starting
// over from a fresh read whenever a concurrent writer wins. An error from fn
// aborts the cycle without writing anything.
func mutate[D versioned](
	ctx context.Context,
	db *gorm.DB,
	table string,
	maxRetries int,
	load func(context.Context) (D, error),
	fn func(D) error,
) (D, error) {
	var zero D

	span, ctx := observability.StartRepositorySpan(ctx, table, "Mutate")
	defer span.End()

	if maxRetries < 1 {
		maxRetries = DefaultMaxRetries
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		doc, err := load(ctx)
		if err != nil {
			return zero, err
		}

		if err := fn(doc); err != nil {
			return zero, err
		}

		saved, err := saveVersioned(ctx, db, doc)
		if err != nil {
			span.SetError(err)
			if isUniqueConstraintError(err) {
				return zero, ErrDuplicate
			}
			return zero, err
		}
		if saved {
			return doc, nil
		}

		observability.MutationConflicts.WithLabelValues(table).Inc()
	}

	span.SetError(ErrConcurrentUpdate)
	return zero, ErrConcurrentUpdate
}
