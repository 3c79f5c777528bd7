package usecase

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type authUsecase struct {
	profiles domain.ProfileRepository
}

func NewAuthUsecase(profiles domain.ProfileRepository) domain.AuthUsecase {
	return &authUsecase{profiles: profiles}
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
