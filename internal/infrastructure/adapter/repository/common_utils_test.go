package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/minigame-rewards/internal/domain/error"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"unique violation", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ForeignKeyError},
		{"check violation", &pgconn.PgError{Code: "23514"}, ConstraintError},
		{"not null violation", &pgconn.PgError{Code: "23502"}, ConstraintError},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, LockError},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, LockError},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, LockError},
		{"query canceled", &pgconn.PgError{Code: "57014"}, TransientError},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, TransientError},
		{"unknown sqlstate", &pgconn.PgError{Code: "42P01"}, ""},
		{"wrapped pg error", errors.Join(errors.New("insert"), &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"deadlock message", errors.New("deadlock detected"), LockError},
		{"duplicate message", errors.New("duplicate key value violates unique constraint"), DuplicateKeyError},
		{"refused message", errors.New("connection refused"), TransientError},
		{"dial message", errors.New("dial tcp 10.0.0.1:5432: no route to host"), ConnectionError},
		{"constraint message", errors.New("new row violates check constraint"), ConstraintError},
		{"plain error", errors.New("something odd"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_SQLStateWinsOverMessage(t *testing.T) {
	classifier := NewErrorClassifier()

	// the message mentions a timeout but the code says unique violation
	err := &pgconn.PgError{Code: "23505", Message: "timeout while inserting"}

	assert.True(t, classifier.IsDuplicateKeyError(err))
	assert.False(t, classifier.IsTransientError(err))
	assert.False(t, classifier.IsConnectionError(err))
	assert.True(t, classifier.IsConstraintError(err))
}

func TestErrorClassifier_ToDomain(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, classifier.ToDomain(nil, errs.ErrUserNotFound, errs.ErrDuplicateUser))
	})

	t.Run("record not found maps to the given error", func(t *testing.T) {
		err := classifier.ToDomain(gorm.ErrRecordNotFound, errs.ErrSessionNotFound, errs.ErrConcurrentPlay)
		assert.Equal(t, errs.ErrSessionNotFound, err)
	})

	t.Run("unique violation maps to the given duplicate", func(t *testing.T) {
		err := classifier.ToDomain(&pgconn.PgError{Code: "23505"}, errs.ErrNotFound, errs.ErrConcurrentPlay)
		assert.ErrorIs(t, err, errs.ErrConcurrentPlay)
	})

	t.Run("lock failures map to transaction conflict", func(t *testing.T) {
		for _, code := range []string{"40001", "40P01", "55P03"} {
			err := classifier.ToDomain(&pgconn.PgError{Code: code}, errs.ErrNotFound, errs.ErrDuplicateUser)
			assert.ErrorIs(t, err, errs.ErrTransactionConflict, code)
		}
	})

	t.Run("integrity failures map to constraint violation", func(t *testing.T) {
		for _, code := range []string{"23503", "23514", "23502"} {
			err := classifier.ToDomain(&pgconn.PgError{Code: code}, errs.ErrNotFound, errs.ErrDuplicateUser)
			assert.ErrorIs(t, err, errs.ErrConstraintViolation, code)
		}
	})

	t.Run("context errors map to database connection", func(t *testing.T) {
		for _, cause := range []error{context.DeadlineExceeded, context.Canceled} {
			err := classifier.ToDomain(cause, errs.ErrNotFound, errs.ErrDuplicateUser)
			assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		}
	})

	t.Run("anything else maps to database connection", func(t *testing.T) {
		err := classifier.ToDomain(errors.New("bad connection"), errs.ErrNotFound, errs.ErrDuplicateUser)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Contains(t, err.Error(), "bad connection")
	})
}
