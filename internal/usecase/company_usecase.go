package usecase

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type companyUsecase struct {
	companies domain.CompanyRepository
}

func NewCompanyUsecase(companies domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companies: companies}
}

func (u *companyUsecase) GetOwn(ctx context.Context, recruiterID string) (*domain.Company, error) {
	if err := requireSelf(ctx, recruiterID); err != nil {
		return nil, err
	}

	company, err := u.companies.GetByRecruiterID(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if company == nil {
		return nil, apperror.NotFound("Company profile not set up yet")
	}
	return company, nil
}
