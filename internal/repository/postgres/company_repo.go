package postgres

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetByRecruiterID(ctx context.Context, recruiterID string) (*domain.Company, error) {
	query := `
		SELECT id, recruiter_id, COALESCE(name, ''), logo_url, COALESCE(industry, ''),
			COALESCE(size, ''), website, COALESCE(description, ''), COALESCE(location, ''),
			founded_year, created_at, updated_at
		FROM companies WHERE recruiter_id = $1`

	var c domain.Company
	err := r.db.QueryRow(ctx, query, recruiterID).Scan(
		&c.ID, &c.RecruiterID, &c.Name, &c.LogoURL, &c.Industry,
		&c.Size, &c.Website, &c.Description, &c.Location,
		&c.FoundedYear, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepository) Upsert(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies
			(recruiter_id, name, logo_url, industry, size, website, description, location, founded_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (recruiter_id) DO UPDATE SET
			name = EXCLUDED.name,
			logo_url = EXCLUDED.logo_url,
			industry = EXCLUDED.industry,
			size = EXCLUDED.size,
			website = EXCLUDED.website,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			founded_year = EXCLUDED.founded_year,
			updated_at = NOW()
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		company.RecruiterID, company.Name, company.LogoURL, company.Industry,
		company.Size, company.Website, company.Description, company.Location,
		company.FoundedYear,
	).Scan(&company.ID)
}
