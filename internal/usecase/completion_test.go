package usecase_test

import (
	"context"
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func fullCandidateRow() *domain.CandidateProfile {
	return &domain.CandidateProfile{
		UserID:          "u1",
		Photos:          []string{"https://cdn/p1.jpg"},
		Interests:       []string{"hospitality"},
		Availability:    []string{"Mon-AM"},
		Transportation:  "car",
		Hobbies:         []string{"Surfing"},
		QuickFacts:      []string{"early-bird"},
		Prompts:         []domain.PromptAnswer{{Prompt: "My most used emoji is...", Answer: "🤝"}},
		Skills:          []string{"Communication"},
		Experience:      []domain.ExperienceEntry{{Title: "Barista", Duration: "2 years"}},
		ExperienceYears: 2,
		Education:       "BSc\nMIT\n2020",
		ResumeURL:       strptr("https://cdn/cv.pdf"),
		PortfolioURL:    strptr("https://me.dev"),
		LinkedInURL:     strptr("https://linkedin.com/in/me"),
		Achievements:    strptr("Employee of the month"),
	}
}

func TestPersonalCompletion(t *testing.T) {
	t.Run("fully populated scores 100", func(t *testing.T) {
		assert.Equal(t, 100, usecase.PersonalCompletion(fullCandidateRow(), strptr("Austin, TX")))
	})

	t.Run("is deterministic", func(t *testing.T) {
		row := fullCandidateRow()
		loc := strptr("Austin, TX")
		assert.Equal(t, usecase.PersonalCompletion(row, loc), usecase.PersonalCompletion(row, loc))
	})

	t.Run("nil row scores only the location weight", func(t *testing.T) {
		assert.Equal(t, 5, usecase.PersonalCompletion(nil, strptr("Austin, TX")))
		assert.Equal(t, 0, usecase.PersonalCompletion(nil, nil))
	})

	t.Run("prompts count once regardless of how many are filled", func(t *testing.T) {
		row := &domain.CandidateProfile{Prompts: []domain.PromptAnswer{
			{Prompt: "a", Answer: "x"},
			{Prompt: "b", Answer: "y"},
		}}
		assert.Equal(t, 15, usecase.PersonalCompletion(row, nil))
	})

	t.Run("a blank prompt pair does not count", func(t *testing.T) {
		row := &domain.CandidateProfile{Prompts: []domain.PromptAnswer{{Prompt: "a", Answer: ""}}}
		assert.Equal(t, 0, usecase.PersonalCompletion(row, nil))
	})
}

func TestProfessionalCompletion(t *testing.T) {
	t.Run("fully populated scores 100", func(t *testing.T) {
		assert.Equal(t, 100, usecase.ProfessionalCompletion(fullCandidateRow()))
	})

	t.Run("nil row scores zero", func(t *testing.T) {
		assert.Equal(t, 0, usecase.ProfessionalCompletion(nil))
	})

	t.Run("derived years count as experience without entries", func(t *testing.T) {
		row := &domain.CandidateProfile{ExperienceYears: 3}
		assert.Equal(t, 20, usecase.ProfessionalCompletion(row))
	})

	t.Run("partial profile sums its weights", func(t *testing.T) {
		row := &domain.CandidateProfile{
			Skills:    []string{"Communication"},
			Education: "BSc\nMIT\n2020",
		}
		assert.Equal(t, 35, usecase.ProfessionalCompletion(row))
	})
}

func TestCompanyCompletion(t *testing.T) {
	t.Run("fully populated scores 100", func(t *testing.T) {
		c := &domain.Company{
			Name:        "Acme",
			LogoURL:     strptr("https://cdn/logo.jpg"),
			Industry:    "Technology",
			Size:        "11-50 employees",
			Description: "We make things",
			Location:    "Austin, USA",
			FoundedYear: intptr(2015),
		}
		assert.Equal(t, 100, usecase.CompanyCompletion(c))
	})

	t.Run("nil company scores zero", func(t *testing.T) {
		assert.Equal(t, 0, usecase.CompanyCompletion(nil))
	})
}

func TestCompletionSummary(t *testing.T) {
	t.Run("candidate gets personal and professional scores", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		profiles := new(MockProfileRepo)
		companies := new(MockCompanyRepo)

		profiles.On("GetByID", mock.Anything, "u1").
			Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate, Location: strptr("Austin, TX")}, nil)
		candidates.On("GetByUserID", mock.Anything, "u1").Return(fullCandidateRow(), nil)

		uc := usecase.NewCompletionUsecase(candidates, profiles, companies)
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "u1")

		summary, err := uc.Summary(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, 100, *summary.Personal)
		assert.Equal(t, 100, *summary.Professional)
		assert.Nil(t, summary.Company)
	})

	t.Run("recruiter gets the company score", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		profiles := new(MockProfileRepo)
		companies := new(MockCompanyRepo)

		profiles.On("GetByID", mock.Anything, "r1").
			Return(&domain.Profile{ID: "r1", Role: domain.RoleRecruiter}, nil)
		companies.On("GetByRecruiterID", mock.Anything, "r1").Return(nil, nil)

		uc := usecase.NewCompletionUsecase(candidates, profiles, companies)
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "r1")

		summary, err := uc.Summary(ctx, "r1")
		assert.NoError(t, err)
		assert.Nil(t, summary.Personal)
		assert.Equal(t, 0, *summary.Company)
	})

	t.Run("rejects reading another user's summary", func(t *testing.T) {
		uc := usecase.NewCompletionUsecase(new(MockCandidateRepo), new(MockProfileRepo), new(MockCompanyRepo))
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "u1")

		_, err := uc.Summary(ctx, "u2")
		assert.Error(t, err)
	})
}
