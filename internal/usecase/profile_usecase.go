package usecase

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profiles domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(profiles domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{profiles: profiles, validate: validate}
}

func (u *profileUsecase) GetOwn(ctx context.Context, userID string) (*domain.Profile, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) UpdateOwn(ctx context.Context, userID string, upd *domain.ProfileUpdate) (*domain.Profile, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(upd); err != nil {
		return nil, apperror.BadRequest("Invalid profile data: " + err.Error())
	}

	if err := u.profiles.Update(ctx, userID, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.GetOwn(ctx, userID)
}

// requireSelf verifies that the context user matches the requested user.
func requireSelf(ctx context.Context, userID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only access your own profile")
	}
	return nil
}
