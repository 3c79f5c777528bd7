package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/internal/wizard"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type flowFixture struct {
	uc         domain.FlowUsecase
	candidates *MockCandidateRepo
	profiles   *MockProfileRepo
	companies  *MockCompanyRepo
	store      *MockObjectStore
}

func newFlowFixture() *flowFixture {
	f := &flowFixture{
		candidates: new(MockCandidateRepo),
		profiles:   new(MockProfileRepo),
		companies:  new(MockCompanyRepo),
		store:      new(MockObjectStore),
	}
	manager := wizard.NewManager(time.Hour)
	f.uc = usecase.NewFlowUsecase(manager, f.candidates, f.profiles, f.companies, f.store, validator.New())
	return f
}

func candidateCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleCandidate)
}

func recruiterCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleRecruiter)
}

func rawJSON(s string) json.RawMessage { return json.RawMessage(s) }

func TestPersonalFlowFirstRun(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	// No prior candidate row; account profile without a location.
	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)

	var saved *domain.PersonalSection
	f.candidates.On("UpsertPersonal", mock.Anything, mock.AnythingOfType("*domain.PersonalSection")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.PersonalSection) }).
		Return(nil).Once()
	f.profiles.On("UpdateLocation", mock.Anything, "u1", "Austin, TX").Return(nil).Once()

	state, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, 7, state.TotalSteps)

	// Step 1 (photos): nothing to add, advance.
	state, err = f.uc.Advance(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)

	// Step 2 (interests): pick two.
	_, err = f.uc.Toggle(ctx, "u1", domain.FlowPersonal, &domain.ToggleRequest{Field: "interests", Value: "hospitality"})
	require.NoError(t, err)
	_, err = f.uc.Toggle(ctx, "u1", domain.FlowPersonal, &domain.ToggleRequest{Field: "interests", Value: "retail"})
	require.NoError(t, err)
	state, err = f.uc.Advance(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Step)

	// Step 3 (availability + location).
	_, err = f.uc.ToggleAvailability(ctx, "u1", domain.FlowPersonal, &domain.AvailabilityToggleRequest{Day: "Mon", Slot: "AM"})
	require.NoError(t, err)
	_, err = f.uc.ToggleAvailability(ctx, "u1", domain.FlowPersonal, &domain.AvailabilityToggleRequest{Day: "Wed", Slot: "PM"})
	require.NoError(t, err)
	_, err = f.uc.SetFields(ctx, "u1", domain.FlowPersonal, map[string]json.RawMessage{
		"location": rawJSON(`"Austin, TX"`),
	})
	require.NoError(t, err)
	state, err = f.uc.Advance(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.Equal(t, 4, state.Step)

	// Skip the remaining steps; the final skip submits.
	for i := 0; i < 3; i++ {
		state, err = f.uc.Skip(ctx, "u1", domain.FlowPersonal)
		require.NoError(t, err)
		assert.False(t, state.Completed)
	}
	state, err = f.uc.Skip(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.True(t, state.Completed)

	require.NotNil(t, saved)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, []string{"hospitality", "retail"}, saved.Interests)
	assert.Equal(t, []string{"Mon-AM", "Wed-PM"}, saved.Availability)
	assert.Empty(t, saved.Photos)
	f.candidates.AssertNumberOfCalls(t, "UpsertPersonal", 1)
	f.profiles.AssertExpectations(t)

	// The session is gone after a successful submission.
	_, err = f.uc.State(ctx, "u1", domain.FlowPersonal)
	assert.Error(t, err)
}

func TestPersonalFlowPhotoUploadPartialFailure(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)

	f.store.On("Upload", mock.Anything, domain.BucketAvatars, "u1", "a.jpg", mock.Anything).
		Return("https://cdn/a.jpg", nil).Once()
	f.store.On("Upload", mock.Anything, domain.BucketAvatars, "u1", "b.jpg", mock.Anything).
		Return("", errors.New("bucket unavailable")).Once()
	f.store.On("Upload", mock.Anything, domain.BucketAvatars, "u1", "c.jpg", mock.Anything).
		Return("https://cdn/c.jpg", nil).Once()

	var saved *domain.PersonalSection
	f.candidates.On("UpsertPersonal", mock.Anything, mock.AnythingOfType("*domain.PersonalSection")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.PersonalSection) }).
		Return(nil).Once()

	_, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)

	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		_, err = f.uc.Attach(ctx, "u1", domain.FlowPersonal, "photos", name, "image/jpeg", []byte{0xff, 0xd8})
		require.NoError(t, err)
	}

	// Skip every step; the last one submits.
	var state *domain.FlowState
	for i := 0; i < 7; i++ {
		state, err = f.uc.Skip(ctx, "u1", domain.FlowPersonal)
		require.NoError(t, err)
	}
	require.True(t, state.Completed)

	// The failed upload is dropped; the submission still succeeds.
	require.NotNil(t, saved)
	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/c.jpg"}, saved.Photos)
	f.store.AssertExpectations(t)
}

func TestToggleCapIsInert(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)

	_, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)

	for _, id := range []string{"hospitality", "retail", "food"} {
		_, err = f.uc.Toggle(ctx, "u1", domain.FlowPersonal, &domain.ToggleRequest{Field: "interests", Value: id})
		require.NoError(t, err)
	}

	// Fourth selection: no error, no change.
	state, err := f.uc.Toggle(ctx, "u1", domain.FlowPersonal, &domain.ToggleRequest{Field: "interests", Value: "events"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hospitality", "retail", "food"}, state.Fields["interests"])

	// Deselecting at the cap still works.
	state, err = f.uc.Toggle(ctx, "u1", domain.FlowPersonal, &domain.ToggleRequest{Field: "interests", Value: "retail"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hospitality", "food"}, state.Fields["interests"])
}

func TestPromptSlotUniqueness(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)

	_, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)

	prompt := "My most used emoji is..."
	_, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 0, Prompt: prompt, Answer: "🤝"})
	require.NoError(t, err)

	// The same prompt cannot fill a second slot.
	_, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 1, Prompt: prompt, Answer: "again"})
	assert.Error(t, err)

	// Re-answering the same slot is fine.
	_, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 0, Prompt: prompt, Answer: "☕"})
	assert.NoError(t, err)

	// Unknown prompts are rejected.
	_, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 2, Prompt: "Made up prompt", Answer: "x"})
	assert.Error(t, err)
}

func TestReturnedStateIsStableUnderLaterEdits(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)

	_, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)

	state, err := f.uc.ToggleAvailability(ctx, "u1", domain.FlowPersonal, &domain.AvailabilityToggleRequest{Day: "Mon", Slot: "AM"})
	require.NoError(t, err)
	heldAvailability := state.Fields["availability"].(map[string]bool)

	state, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 0, Prompt: "My most used emoji is...", Answer: "☕"})
	require.NoError(t, err)
	heldPrompts := state.Fields["prompts"].([]domain.PromptAnswer)

	// Later edits land in fresh containers, not in the ones handed out above.
	_, err = f.uc.ToggleAvailability(ctx, "u1", domain.FlowPersonal, &domain.AvailabilityToggleRequest{Day: "Wed", Slot: "PM"})
	require.NoError(t, err)
	_, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 1, Prompt: "My go-to comfort snack is...", Answer: "toast"})
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"Mon-AM": true}, heldAvailability)
	assert.Equal(t, "☕", heldPrompts[0].Answer)
	assert.Empty(t, heldPrompts[1].Prompt)
}

func TestStateMarshalsDuringConcurrentEdits(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)

	_, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)

	state, err := f.uc.ToggleAvailability(ctx, "u1", domain.FlowPersonal, &domain.AvailabilityToggleRequest{Day: "Mon", Slot: "AM"})
	require.NoError(t, err)

	// A handler serializes the returned state outside any lock while the same
	// user keeps editing from another request.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			if _, err := json.Marshal(state.Fields); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	days := []string{"Tue", "Wed", "Thu", "Fri"}
	for i := 0; i < 500; i++ {
		_, err := f.uc.ToggleAvailability(ctx, "u1", domain.FlowPersonal, &domain.AvailabilityToggleRequest{Day: days[i%len(days)], Slot: "PM"})
		require.NoError(t, err)
		_, err = f.uc.SetPrompt(ctx, "u1", domain.FlowPersonal, &domain.PromptRequest{Slot: 0, Prompt: "My most used emoji is...", Answer: "🤝"})
		require.NoError(t, err)
	}
	<-done
}

func TestCompanyFlowGatesSteps(t *testing.T) {
	f := newFlowFixture()
	ctx := recruiterCtx("r1")

	f.companies.On("GetByRecruiterID", mock.Anything, "r1").Return(nil, nil)

	var saved *domain.Company
	f.companies.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Company")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Company) }).
		Return(nil).Once()

	state, err := f.uc.Start(ctx, "r1", domain.FlowCompany)
	require.NoError(t, err)
	assert.Equal(t, 5, state.TotalSteps)
	assert.False(t, state.StepValid)

	// Step 1 gates on the company name.
	_, err = f.uc.Advance(ctx, "r1", domain.FlowCompany)
	assert.Error(t, err)
	// Steps 1-4 cannot be skipped either.
	_, err = f.uc.Skip(ctx, "r1", domain.FlowCompany)
	assert.Error(t, err)

	_, err = f.uc.SetFields(ctx, "r1", domain.FlowCompany, map[string]json.RawMessage{"name": rawJSON(`"Acme"`)})
	require.NoError(t, err)
	state, err = f.uc.Advance(ctx, "r1", domain.FlowCompany)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)

	// Step 2 needs city and country.
	_, err = f.uc.SetFields(ctx, "r1", domain.FlowCompany, map[string]json.RawMessage{"city": rawJSON(`"Surfers Paradise"`)})
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, "r1", domain.FlowCompany)
	assert.Error(t, err)

	_, err = f.uc.SetFields(ctx, "r1", domain.FlowCompany, map[string]json.RawMessage{"country": rawJSON(`"Australia"`)})
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, "r1", domain.FlowCompany)
	require.NoError(t, err)

	_, err = f.uc.SetFields(ctx, "r1", domain.FlowCompany, map[string]json.RawMessage{
		"industry": rawJSON(`"Technology"`),
		"size":     rawJSON(`"11-50 employees"`),
	})
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, "r1", domain.FlowCompany)
	require.NoError(t, err)

	_, err = f.uc.SetFields(ctx, "r1", domain.FlowCompany, map[string]json.RawMessage{"description": rawJSON(`"We make things"`)})
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, "r1", domain.FlowCompany)
	require.NoError(t, err)

	// Step 5 is optional; skipping it submits.
	state, err = f.uc.Skip(ctx, "r1", domain.FlowCompany)
	require.NoError(t, err)
	assert.True(t, state.Completed)

	require.NotNil(t, saved)
	assert.Equal(t, "Acme", saved.Name)
	assert.Equal(t, "Surfers Paradise, Australia", saved.Location)
	assert.Equal(t, "Technology", saved.Industry)
}

func TestFlowAccessControl(t *testing.T) {
	f := newFlowFixture()

	t.Run("candidate cannot start the company flow", func(t *testing.T) {
		_, err := f.uc.Start(candidateCtx("u1"), "u1", domain.FlowCompany)
		assert.Error(t, err)
	})

	t.Run("recruiter cannot start the personal flow", func(t *testing.T) {
		_, err := f.uc.Start(recruiterCtx("r1"), "r1", domain.FlowPersonal)
		assert.Error(t, err)
	})

	t.Run("unknown flow is rejected", func(t *testing.T) {
		_, err := f.uc.Start(candidateCtx("u1"), "u1", domain.FlowName("mystery"))
		assert.Error(t, err)
	})

	t.Run("user mismatch is rejected", func(t *testing.T) {
		_, err := f.uc.Start(candidateCtx("u1"), "u2", domain.FlowPersonal)
		assert.Error(t, err)
	})

	t.Run("actions without a session fail", func(t *testing.T) {
		_, err := f.uc.Advance(candidateCtx("u9"), "u9", domain.FlowPersonal)
		assert.Error(t, err)
	})
}

func TestReconcileSeedsFromSavedRow(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	row := &domain.CandidateProfile{
		UserID:       "u1",
		Interests:    []string{"retail"},
		Availability: []string{"Tue-AM", "Fri-EVE"},
		Skills:       []string{"Communication", "POS Systems", "Underwater Basket Weaving"},
		Education:    "BSc\nMIT\n2020",
		Achievements: strptr("One; Two"),
	}
	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(row, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate, Location: strptr("Austin, TX")}, nil)

	t.Run("personal flow seeds saved selections", func(t *testing.T) {
		state, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
		require.NoError(t, err)
		assert.Equal(t, []string{"retail"}, state.Fields["interests"])
		assert.Equal(t, "Austin, TX", state.Fields["location"])
		assert.Equal(t, map[string]bool{"Tue-AM": true, "Fri-EVE": true}, state.Fields["availability"])
	})

	t.Run("professional flow re-categorizes skills", func(t *testing.T) {
		state, err := f.uc.Start(ctx, "u1", domain.FlowProfessional)
		require.NoError(t, err)
		// Custom skills land in the soft bucket.
		assert.Equal(t, []string{"Communication", "Underwater Basket Weaving"}, state.Fields["soft_skills"])
		assert.Equal(t, []string{"POS Systems"}, state.Fields["technical_skills"])
		assert.Equal(t, []domain.EducationEntry{{Degree: "BSc", School: "MIT", Year: "2020"}}, state.Fields["education"])
		assert.Equal(t, []string{"One", "Two"}, state.Fields["achievements"])
	})
}

func TestProfessionalFlowSubmission(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.store.On("Upload", mock.Anything, domain.BucketResumes, "u1", "cv.pdf", mock.Anything).
		Return("https://cdn/cv.pdf", nil).Once()

	var saved *domain.ProfessionalSection
	f.candidates.On("UpsertProfessional", mock.Anything, mock.AnythingOfType("*domain.ProfessionalSection")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.ProfessionalSection) }).
		Return(nil).Once()

	_, err := f.uc.Start(ctx, "u1", domain.FlowProfessional)
	require.NoError(t, err)

	_, err = f.uc.SetFields(ctx, "u1", domain.FlowProfessional, map[string]json.RawMessage{
		"experience": rawJSON(`[{"title":"Barista","company":"Cafe","duration":"3 years"},{"title":"Waiter","company":"Bar","duration":"2021 - Present"}]`),
		"education":  rawJSON(`[{"degree":"BSc","school":"MIT","year":"2020"}]`),
	})
	require.NoError(t, err)

	_, err = f.uc.Toggle(ctx, "u1", domain.FlowProfessional, &domain.ToggleRequest{Field: "soft_skills", Value: "Communication"})
	require.NoError(t, err)
	_, err = f.uc.Toggle(ctx, "u1", domain.FlowProfessional, &domain.ToggleRequest{Field: "technical_skills", Value: "POS Systems"})
	require.NoError(t, err)

	_, err = f.uc.Attach(ctx, "u1", domain.FlowProfessional, "resume", "cv.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)

	var state *domain.FlowState
	for i := 0; i < 5; i++ {
		state, err = f.uc.Skip(ctx, "u1", domain.FlowProfessional)
		require.NoError(t, err)
	}
	require.True(t, state.Completed)

	require.NotNil(t, saved)
	assert.Equal(t, []string{"Communication", "POS Systems"}, saved.Skills)
	assert.Equal(t, 3, saved.ExperienceYears)
	assert.Equal(t, "BSc\nMIT\n2020", saved.Education)
	require.NotNil(t, saved.ResumeURL)
	assert.Equal(t, "https://cdn/cv.pdf", *saved.ResumeURL)
}

func TestSubmissionFailureRetainsSession(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	f.candidates.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
	f.profiles.On("GetByID", mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Role: domain.RoleCandidate}, nil)
	f.candidates.On("UpsertPersonal", mock.Anything, mock.Anything).
		Return(errors.New("db down")).Once()
	f.candidates.On("UpsertPersonal", mock.Anything, mock.Anything).
		Return(nil).Once()

	_, err := f.uc.Start(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)

	var state *domain.FlowState
	for i := 0; i < 6; i++ {
		state, err = f.uc.Skip(ctx, "u1", domain.FlowPersonal)
		require.NoError(t, err)
	}
	assert.Equal(t, 7, state.Step)

	// First submission attempt fails; the session survives for a retry.
	_, err = f.uc.Skip(ctx, "u1", domain.FlowPersonal)
	assert.Error(t, err)

	state, err = f.uc.State(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.Equal(t, 7, state.Step)

	state, err = f.uc.Skip(ctx, "u1", domain.FlowPersonal)
	require.NoError(t, err)
	assert.True(t, state.Completed)
}

func TestCompletionFlowDiscardsAnswers(t *testing.T) {
	f := newFlowFixture()
	ctx := candidateCtx("u1")

	state, err := f.uc.Start(ctx, "u1", domain.FlowCompletion)
	require.NoError(t, err)
	assert.Equal(t, 8, state.TotalSteps)

	_, err = f.uc.SetFields(ctx, "u1", domain.FlowCompletion, map[string]json.RawMessage{
		"location":         rawJSON(`"Gold Coast"`),
		"political_belief": rawJSON(`"prefer not to say"`),
	})
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		state, err = f.uc.Skip(ctx, "u1", domain.FlowCompletion)
		require.NoError(t, err)
	}
	assert.True(t, state.Completed)

	// Nothing is persisted.
	f.candidates.AssertNotCalled(t, "UpsertPersonal", mock.Anything, mock.Anything)
	f.candidates.AssertNotCalled(t, "UpsertProfessional", mock.Anything, mock.Anything)
}
