package repository

import (
	"context"

	"gorm.io/gorm"
)

// nextSequence atomically increments and returns the counter for scope. The
// upsert makes the read-modify-write a single statement, so concurrent
// callers always receive distinct values, and the counter never moves
// backwards when documents are deleted.
func nextSequence(ctx context.Context, db *gorm.DB, scope string) (int64, error) {
	var value int64
	err := db.WithContext(ctx).Raw(`
		INSERT INTO document_sequences (scope, value, updated_at)
		VALUES (?, 1, NOW())
		ON CONFLICT (scope) DO UPDATE
		SET value = document_sequences.value + 1, updated_at = NOW()
		RETURNING value`, scope).Scan(&value).Error
	return value, err
}
