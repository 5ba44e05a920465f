package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/profile"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `user_id, first_name, last_name, role, expected_start_time::text, grace_minutes, avatar_url, created_at, updated_at`

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Role,
		&p.ExpectedStartTime,
		&p.GraceMinutes,
		&p.AvatarURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

// Create implements profile.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profiles (user_id, first_name, last_name, role, expected_start_time, grace_minutes, avatar_url)
		VALUES ($1, $2, $3, $4, $5::time, $6, $7)
		RETURNING ` + profileColumns

	return scanProfile(q.QueryRow(ctx, query,
		p.UserID,
		p.FirstName,
		p.LastName,
		p.Role,
		p.ExpectedStartTime,
		p.GraceMinutes,
		p.AvatarURL,
	))
}

// GetByUserID implements profile.ProfileRepository.
func (r *profileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(q.QueryRow(ctx, query, userID))
}

// Update implements profile.ProfileRepository.
func (r *profileRepositoryImpl) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET first_name = $2,
		    last_name = $3,
		    expected_start_time = $4::time,
		    grace_minutes = $5,
		    avatar_url = $6,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	return scanProfile(q.QueryRow(ctx, query,
		p.UserID,
		p.FirstName,
		p.LastName,
		p.ExpectedStartTime,
		p.GraceMinutes,
		p.AvatarURL,
	))
}
