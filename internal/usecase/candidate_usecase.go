package usecase

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidates domain.CandidateProfileRepository
	profiles   domain.ProfileRepository
}

func NewCandidateUsecase(candidates domain.CandidateProfileRepository, profiles domain.ProfileRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidates: candidates, profiles: profiles}
}

func (u *candidateUsecase) PublicProfile(ctx context.Context, userID string) (*domain.CandidateCard, error) {
	account, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	if account.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}

	candidate, err := u.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		// Account exists but the profile flows were never completed.
		candidate = &domain.CandidateProfile{UserID: userID}
	}

	return &domain.CandidateCard{
		Profile:   *candidate,
		FullName:  account.FullName,
		Location:  account.Location,
		Bio:       account.Bio,
		AvatarURL: account.AvatarURL,
	}, nil
}

func (u *candidateUsecase) Browse(ctx context.Context, filter *domain.CandidateFilter) ([]domain.CandidateCard, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Only recruiters can browse candidates")
	}

	cards, err := u.candidates.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if cards == nil {
		cards = []domain.CandidateCard{}
	}
	return cards, nil
}
