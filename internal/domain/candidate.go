package domain

import (
	"context"
	"time"
)

// PromptAnswer is one personality prompt/answer pair. A pair is considered
// filled only when both sides are non-empty.
type PromptAnswer struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Filled reports whether both the prompt and the answer are present.
func (p PromptAnswer) Filled() bool {
	return p.Prompt != "" && p.Answer != ""
}

// ExperienceEntry is one repeatable work-history record. Duration is free
// text ("2021 - Present", "3 years"); derived years are computed from it at
// submission time.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is one repeatable education record. It is stored as a
// delimited string on the candidate row; the codec package owns that
// encoding.
type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// CandidateProfile is the single candidate_profiles row owned one-to-one by
// a candidate user. The personal and professional flows each upsert their own
// column subset into it.
type CandidateProfile struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`

	// Personal flow columns.
	Photos         []string       `json:"photos"`
	Interests      []string       `json:"interests"`
	Availability   []string       `json:"availability"` // "Mon-AM" style keys
	Transportation string         `json:"transportation"`
	Hobbies        []string       `json:"hobbies"`
	QuickFacts     []string       `json:"quick_facts"`
	Prompts        []PromptAnswer `json:"prompts"`

	// Professional flow columns.
	Skills          []string          `json:"skills"`
	Experience      []ExperienceEntry `json:"experience"`
	ExperienceYears int               `json:"experience_years"`
	Education       string            `json:"education"` // encoded, see codec
	ResumeURL       *string           `json:"resume_url"`
	PortfolioURL    *string           `json:"portfolio_url"`
	LinkedInURL     *string           `json:"linkedin_url"`
	Achievements    *string           `json:"achievements"` // semicolon-joined

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonalSection is the column subset written by the personal flow.
type PersonalSection struct {
	UserID         string         `json:"user_id" validate:"required"`
	Photos         []string       `json:"photos" validate:"max=5"`
	Interests      []string       `json:"interests" validate:"max=3"`
	Availability   []string       `json:"availability" validate:"max=21"`
	Transportation string         `json:"transportation"`
	Hobbies        []string       `json:"hobbies" validate:"max=10"`
	QuickFacts     []string       `json:"quick_facts" validate:"max=10"`
	Prompts        []PromptAnswer `json:"prompts" validate:"max=3"`
}

// ProfessionalSection is the column subset written by the professional flow.
type ProfessionalSection struct {
	UserID          string            `json:"user_id" validate:"required"`
	Skills          []string          `json:"skills"`
	Experience      []ExperienceEntry `json:"experience"`
	ExperienceYears int               `json:"experience_years" validate:"min=0"`
	Education       string            `json:"education"`
	ResumeURL       *string           `json:"resume_url" validate:"omitempty,url"`
	PortfolioURL    *string           `json:"portfolio_url" validate:"omitempty,url"`
	LinkedInURL     *string           `json:"linkedin_url" validate:"omitempty,url"`
	Achievements    *string           `json:"achievements"`
}

// CandidateFilter narrows the recruiter-side candidate listing.
type CandidateFilter struct {
	Skills             []string `json:"skills"`
	MinExperienceYears int      `json:"min_experience_years"`
}

// CandidateCard is a candidate row joined with its account profile, as shown
// to recruiters and on the public profile view.
type CandidateCard struct {
	Profile   CandidateProfile `json:"profile"`
	FullName  string           `json:"full_name"`
	Location  *string          `json:"location"`
	Bio       *string          `json:"bio"`
	AvatarURL *string          `json:"avatar_url"`
}

type CandidateProfileRepository interface {
	// GetByUserID returns (nil, nil) when the user has no row yet.
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	UpsertPersonal(ctx context.Context, section *PersonalSection) error
	UpsertProfessional(ctx context.Context, section *ProfessionalSection) error
	Search(ctx context.Context, filter *CandidateFilter) ([]CandidateCard, error)
}

type CandidateUsecase interface {
	PublicProfile(ctx context.Context, userID string) (*CandidateCard, error)
	Browse(ctx context.Context, filter *CandidateFilter) ([]CandidateCard, error)
}
