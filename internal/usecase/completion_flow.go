package usecase

import (
	"context"

	"go-jobmatch-backend/internal/catalog"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/wizard"
	"go-jobmatch-backend/pkg/logger"
)

// completionSpec is the generic 8-step onboarding questionnaire. Its submit
// handler intentionally discards the collected answers: persistence for the
// demographic fields is a deferred feature, but the flow still exercises the
// full wizard surface.
func (u *flowUsecase) completionSpec() *flowSpec {
	def := &wizard.Definition{
		Flow: string(domain.FlowCompletion),
		Steps: []wizard.Step{
			{Name: "interests", Render: "option-cards", CanSkip: true},
			{Name: "availability", Render: "availability-grid", CanSkip: true},
			{Name: "location", Render: "text", CanSkip: true},
			{Name: "political_belief", Render: "select", CanSkip: true},
			{Name: "ethnicities", Render: "chips", CanSkip: true},
			{Name: "religious_belief", Render: "select", CanSkip: true},
			{Name: "prompts", Render: "prompt-slots", CanSkip: true},
			{Name: "photos", Render: "photo-grid", CanSkip: true},
		},
	}

	return &flowSpec{
		def:  def,
		role: domain.RoleCandidate,
		fields: map[string]fieldDecoder{
			"location":         decodeString,
			"political_belief": decodeString,
			"religious_belief": decodeString,
			"ethnicities":      decodeStringSlice,
		},
		toggles: map[string]toggleSpec{
			"interests": {cap: catalog.MaxInterests, known: catalog.IsWorkInterest},
		},
		attach: map[string]attachSpec{
			"photos": {bucket: domain.BucketAvatars, max: catalog.MaxPhotos},
		},
		hasAvailability: true,
		hasPrompts:      true,
		reconcile: func(ctx context.Context, userID string) (wizard.FieldValues, error) {
			return wizard.FieldValues{
				"interests":        []string{},
				"availability":     map[string]bool{},
				"location":         "",
				"political_belief": "",
				"ethnicities":      []string{},
				"religious_belief": "",
				"prompts":          make([]domain.PromptAnswer, catalog.PromptSlots),
				"photos":           []string{},
			}, nil
		},
		compile: func(ctx context.Context, userID string, s *wizard.Session) error {
			logger.Log.Info("completion flow submitted, answers not persisted",
				"user_id", userID)
			return nil
		},
	}
}
