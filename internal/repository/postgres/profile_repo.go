package postgres

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT id, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(role, 'candidate'),
			location, bio, avatar_url, created_at, updated_at
		FROM profiles WHERE id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.FullName, &p.Email, &p.Role,
		&p.Location, &p.Bio, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, userID string, upd *domain.ProfileUpdate) error {
	query := `
		UPDATE profiles SET
			full_name = COALESCE($1, full_name),
			location = COALESCE($2, location),
			bio = COALESCE($3, bio),
			avatar_url = COALESCE($4, avatar_url),
			updated_at = NOW()
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query, upd.FullName, upd.Location, upd.Bio, upd.AvatarURL, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) UpdateLocation(ctx context.Context, userID, location string) error {
	query := `UPDATE profiles SET location = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, location, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
