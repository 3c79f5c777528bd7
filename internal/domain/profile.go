package domain

import (
	"context"
	"time"
)

// Role values stored on the profiles row.
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// Profile is the account-level row kept in sync with the auth provider.
// It is the "identity collaborator" surface: id, name, email, role, plus the
// free-text location that the personal flow writes as a second, independent
// update alongside the candidate profile upsert.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Location  *string   `json:"location"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the editable account fields. Nil means "leave as is".
type ProfileUpdate struct {
	FullName  *string `json:"full_name,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, upd *ProfileUpdate) error
	UpdateLocation(ctx context.Context, userID, location string) error
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, userID string) (*Profile, error)
	UpdateOwn(ctx context.Context, userID string, upd *ProfileUpdate) (*Profile, error)
}

// AuthUsecase resolves the authenticated user for the auth middleware.
type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, userID string) (*Profile, error)
}
