package domain

import (
	"context"
	"time"
)

// CompanyLocation is the structured address collected by the company flow.
// It is flattened to a single display string at the storage boundary; the
// flattened form is not re-parseable, so the structured form only lives for
// the duration of the wizard session.
type CompanyLocation struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Company is the companies row owned one-to-one by a recruiter user.
type Company struct {
	ID          int64     `json:"id"`
	RecruiterID string    `json:"recruiter_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	LogoURL     *string   `json:"logo_url"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Website     *string   `json:"website" validate:"omitempty,url"`
	Description string    `json:"description"`
	Location    string    `json:"location"` // composed display string
	FoundedYear *int      `json:"founded_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyRepository interface {
	// GetByRecruiterID returns (nil, nil) when the recruiter has no company yet.
	GetByRecruiterID(ctx context.Context, recruiterID string) (*Company, error)
	Upsert(ctx context.Context, company *Company) error
}

type CompanyUsecase interface {
	GetOwn(ctx context.Context, recruiterID string) (*Company, error)
}
