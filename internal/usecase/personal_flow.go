package usecase

import (
	"context"

	"go-jobmatch-backend/internal/catalog"
	"go-jobmatch-backend/internal/codec"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/wizard"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"
)

// personalSpec is the 7-step candidate lifestyle flow: photos, work
// interests, availability + location, transportation, hobbies, quick facts,
// personality prompts. Every step may be skipped and none gates Advance.
func (u *flowUsecase) personalSpec() *flowSpec {
	def := &wizard.Definition{
		Flow: string(domain.FlowPersonal),
		Steps: []wizard.Step{
			{Name: "photos", Render: "photo-grid", CanSkip: true},
			{Name: "interests", Render: "option-cards", CanSkip: true},
			{Name: "availability", Render: "availability-grid", CanSkip: true},
			{Name: "transportation", Render: "option-cards", CanSkip: true},
			{Name: "hobbies", Render: "chips", CanSkip: true},
			{Name: "quick_facts", Render: "chips", CanSkip: true},
			{Name: "prompts", Render: "prompt-slots", CanSkip: true},
		},
	}

	return &flowSpec{
		def:  def,
		role: domain.RoleCandidate,
		fields: map[string]fieldDecoder{
			"photos":         decodeStringSlice,
			"location":       decodeString,
			"transportation": decodeStringIn(catalog.IsTransportMode),
		},
		toggles: map[string]toggleSpec{
			"interests":   {cap: catalog.MaxInterests, known: catalog.IsWorkInterest},
			"hobbies":     {cap: catalog.MaxHobbies, known: catalog.IsHobby},
			"quick_facts": {cap: catalog.MaxQuickFacts, known: catalog.IsQuickFact},
		},
		attach: map[string]attachSpec{
			"photos": {bucket: domain.BucketAvatars, max: catalog.MaxPhotos},
		},
		hasAvailability: true,
		hasPrompts:      true,
		reconcile:       u.reconcilePersonal,
		compile:         u.compilePersonal,
	}
}

func (u *flowUsecase) reconcilePersonal(ctx context.Context, userID string) (wizard.FieldValues, error) {
	fields := wizard.FieldValues{
		"photos":         []string{},
		"interests":      []string{},
		"availability":   map[string]bool{},
		"transportation": "",
		"hobbies":        []string{},
		"quick_facts":    []string{},
		"prompts":        make([]domain.PromptAnswer, catalog.PromptSlots),
		"location":       "",
	}

	row, err := u.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row != nil {
		fields["photos"] = row.Photos
		fields["interests"] = row.Interests
		fields["availability"] = codec.ExpandAvailability(row.Availability)
		fields["transportation"] = row.Transportation
		fields["hobbies"] = row.Hobbies
		fields["quick_facts"] = row.QuickFacts
		// Saved prompts only replace the blank slots when at least one pair
		// survived; otherwise the three empties stay.
		if len(row.Prompts) > 0 {
			prompts := make([]domain.PromptAnswer, catalog.PromptSlots)
			copy(prompts, row.Prompts)
			fields["prompts"] = prompts
		}
	}

	// Location lives on the account profile, not the candidate row.
	account, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account.Location != nil {
		fields["location"] = *account.Location
	}

	return fields, nil
}

func (u *flowUsecase) compilePersonal(ctx context.Context, userID string, s *wizard.Session) error {
	snap := s.Snapshot()

	// Existing remote URLs first, then the session's pending uploads. A
	// failed upload is logged and dropped; the submission continues with
	// whatever made it through.
	photos := append([]string{}, asStringSlice(snap.Fields["photos"])...)
	for _, att := range s.AttachmentsFor("photos") {
		url, err := u.store.Upload(ctx, domain.BucketAvatars, userID, att.Filename, att.Data)
		if err != nil {
			logger.Log.Warn("photo upload failed, dropping file",
				"user_id", userID, "filename", att.Filename, "error", err)
			continue
		}
		photos = append(photos, url)
	}
	if len(photos) > catalog.MaxPhotos {
		photos = photos[:catalog.MaxPhotos]
	}

	var prompts []domain.PromptAnswer
	for _, p := range asPrompts(snap.Fields["prompts"]) {
		if p.Filled() {
			prompts = append(prompts, p)
		}
	}

	section := &domain.PersonalSection{
		UserID:         userID,
		Photos:         photos,
		Interests:      asStringSlice(snap.Fields["interests"]),
		Availability:   codec.FlattenAvailability(asAvailability(snap.Fields["availability"])),
		Transportation: asString(snap.Fields["transportation"]),
		Hobbies:        asStringSlice(snap.Fields["hobbies"]),
		QuickFacts:     asStringSlice(snap.Fields["quick_facts"]),
		Prompts:        prompts,
	}
	if err := u.validate.Struct(section); err != nil {
		return apperror.BadRequest("Invalid profile data: " + err.Error())
	}

	if err := u.candidates.UpsertPersonal(ctx, section); err != nil {
		return apperror.Internal(err)
	}

	// Location is a second, independent write to the account profile. A
	// failure here still surfaces as a failed submission even though the
	// candidate row is already saved.
	if location := asString(snap.Fields["location"]); location != "" {
		if err := u.profiles.UpdateLocation(ctx, userID, location); err != nil {
			return apperror.Internal(err)
		}
	}
	return nil
}
