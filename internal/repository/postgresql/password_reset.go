package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/auth"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type PasswordResetRepository interface {
	CreateResetToken(ctx context.Context, userID string, token string, expiresAt time.Time) error
	// ConsumeResetToken marks the token used and returns the owning user id.
	// Unknown, expired, or already-used tokens map to auth.ErrResetTokenInvalid.
	ConsumeResetToken(ctx context.Context, token string) (userID string, err error)
}

type passwordResetRepositoryImpl struct {
	db *database.DB
}

func NewPasswordResetRepository(db *database.DB) PasswordResetRepository {
	return &passwordResetRepositoryImpl{db: db}
}

func (r *passwordResetRepositoryImpl) CreateResetToken(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO password_resets (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := q.Exec(ctx, query, userID, hashToken(token), expiresAt.UTC())
	return err
}

func (r *passwordResetRepositoryImpl) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE password_resets
		SET used_at = NOW()
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > NOW()
		RETURNING user_id
	`

	var userID string
	err := q.QueryRow(ctx, query, hashToken(token)).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrResetTokenInvalid
		}
		return "", err
	}
	return userID, nil
}
