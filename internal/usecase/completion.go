package usecase

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

// The completion percentages are additive presence checks with fixed weights.
// They are informational only and never gate a feature.

// PersonalCompletion scores the personal-flow sections of a candidate row.
// Location lives on the account profile, not the candidate row, so it is
// passed in separately. A nil candidate scores only the location weight.
func PersonalCompletion(p *domain.CandidateProfile, location *string) int {
	score := 0
	if p != nil {
		if len(p.Photos) > 0 {
			score += 15
		}
		if len(p.Interests) > 0 {
			score += 15
		}
		if len(p.Availability) > 0 {
			score += 15
		}
		if p.Transportation != "" {
			score += 10
		}
		if len(p.Hobbies) > 0 {
			score += 15
		}
		if len(p.QuickFacts) > 0 {
			score += 10
		}
		for _, pa := range p.Prompts {
			if pa.Filled() {
				score += 15
				break
			}
		}
	}
	if location != nil && *location != "" {
		score += 5
	}
	return clampScore(score)
}

// ProfessionalCompletion scores the professional-flow sections. Experience
// counts when either entries exist or a derived years figure survived from an
// earlier save.
func ProfessionalCompletion(p *domain.CandidateProfile) int {
	if p == nil {
		return 0
	}
	score := 0
	if len(p.Skills) > 0 {
		score += 20
	}
	if len(p.Experience) > 0 || p.ExperienceYears > 0 {
		score += 20
	}
	if p.Education != "" {
		score += 15
	}
	if p.ResumeURL != nil && *p.ResumeURL != "" {
		score += 15
	}
	if p.PortfolioURL != nil && *p.PortfolioURL != "" {
		score += 10
	}
	if p.LinkedInURL != nil && *p.LinkedInURL != "" {
		score += 10
	}
	if p.Achievements != nil && *p.Achievements != "" {
		score += 10
	}
	return clampScore(score)
}

// CompanyCompletion scores the recruiter's company row for the dashboard card.
func CompanyCompletion(c *domain.Company) int {
	if c == nil {
		return 0
	}
	score := 0
	if c.Name != "" {
		score += 20
	}
	if c.LogoURL != nil && *c.LogoURL != "" {
		score += 10
	}
	if c.Industry != "" {
		score += 15
	}
	if c.Size != "" {
		score += 15
	}
	if c.Description != "" {
		score += 20
	}
	if c.Location != "" {
		score += 15
	}
	if c.FoundedYear != nil {
		score += 5
	}
	return clampScore(score)
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}

type completionUsecase struct {
	candidates domain.CandidateProfileRepository
	profiles   domain.ProfileRepository
	companies  domain.CompanyRepository
}

func NewCompletionUsecase(
	candidates domain.CandidateProfileRepository,
	profiles domain.ProfileRepository,
	companies domain.CompanyRepository,
) domain.CompletionUsecase {
	return &completionUsecase{
		candidates: candidates,
		profiles:   profiles,
		companies:  companies,
	}
}

func (u *completionUsecase) Summary(ctx context.Context, userID string) (*domain.CompletionSummary, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	account, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var summary domain.CompletionSummary
	switch account.Role {
	case domain.RoleRecruiter:
		company, err := u.companies.GetByRecruiterID(ctx, userID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		score := CompanyCompletion(company)
		summary.Company = &score
	default:
		candidate, err := u.candidates.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		personal := PersonalCompletion(candidate, account.Location)
		professional := ProfessionalCompletion(candidate)
		summary.Personal = &personal
		summary.Professional = &professional
	}
	return &summary, nil
}
