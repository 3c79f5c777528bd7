package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"go-jobmatch-backend/internal/catalog"
	"go-jobmatch-backend/internal/codec"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/wizard"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// toggleSpec describes one capped multi-select field. A nil known func means
// arbitrary values are accepted (custom skills).
type toggleSpec struct {
	cap   int
	known func(string) bool
}

// attachSpec describes one upload slot: target bucket and how many pending
// files the session accepts for the field.
type attachSpec struct {
	bucket string
	max    int
}

type fieldDecoder func(raw json.RawMessage) (any, error)

// flowSpec binds a wizard definition to its field decoding, toggle caps,
// attachment slots, reconciliation loader and submission compiler.
type flowSpec struct {
	def     *wizard.Definition
	role    string // required account role, "" for any
	fields  map[string]fieldDecoder
	toggles map[string]toggleSpec
	attach  map[string]attachSpec

	// availability grid and prompt slots only exist on some flows
	hasAvailability bool
	hasPrompts      bool

	reconcile func(ctx context.Context, userID string) (wizard.FieldValues, error)
	compile   func(ctx context.Context, userID string, s *wizard.Session) error
}

type flowUsecase struct {
	manager    *wizard.Manager
	specs      map[domain.FlowName]*flowSpec
	candidates domain.CandidateProfileRepository
	profiles   domain.ProfileRepository
	companies  domain.CompanyRepository
	store      domain.ObjectStore
	validate   *validator.Validate
}

func NewFlowUsecase(
	manager *wizard.Manager,
	candidates domain.CandidateProfileRepository,
	profiles domain.ProfileRepository,
	companies domain.CompanyRepository,
	store domain.ObjectStore,
	validate *validator.Validate,
) domain.FlowUsecase {
	u := &flowUsecase{
		manager:    manager,
		candidates: candidates,
		profiles:   profiles,
		companies:  companies,
		store:      store,
		validate:   validate,
	}
	u.specs = map[domain.FlowName]*flowSpec{
		domain.FlowPersonal:     u.personalSpec(),
		domain.FlowProfessional: u.professionalSpec(),
		domain.FlowCompany:      u.companySpec(),
		domain.FlowCompletion:   u.completionSpec(),
	}
	return u
}

func (u *flowUsecase) spec(ctx context.Context, userID string, flow domain.FlowName) (*flowSpec, error) {
	if !flow.IsValid() {
		return nil, apperror.BadRequest("Unknown flow: " + string(flow))
	}
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}
	spec := u.specs[flow]
	if spec.role != "" {
		role, _ := ctx.Value(domain.KeyUserRole).(string)
		if role != spec.role {
			return nil, apperror.Forbidden("This flow is not available for your account type")
		}
	}
	return spec, nil
}

func (u *flowUsecase) session(ctx context.Context, userID string, flow domain.FlowName) (*flowSpec, *wizard.Session, error) {
	spec, err := u.spec(ctx, userID, flow)
	if err != nil {
		return nil, nil, err
	}
	s, ok := u.manager.Get(string(flow), userID)
	if !ok {
		return nil, nil, apperror.NotFound("No active session for this flow")
	}
	return spec, s, nil
}

func (u *flowUsecase) Start(ctx context.Context, userID string, flow domain.FlowName) (*domain.FlowState, error) {
	spec, err := u.spec(ctx, userID, flow)
	if err != nil {
		return nil, err
	}

	// Reconciliation is fail-open: a load error means the wizard starts from
	// blank defaults instead of blocking the user.
	initial, err := spec.reconcile(ctx, userID)
	if err != nil {
		logger.Log.Warn("flow reconciliation failed, starting blank",
			"flow", flow, "user_id", userID, "error", err)
		initial = nil
	}

	s := u.manager.Start(spec.def, userID, initial)
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) State(ctx context.Context, userID string, flow domain.FlowName) (*domain.FlowState, error) {
	_, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) SetFields(ctx context.Context, userID string, flow domain.FlowName, fields map[string]json.RawMessage) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}

	for name, raw := range fields {
		decode, ok := spec.fields[name]
		if !ok {
			return nil, apperror.BadRequest("Unknown field: " + name)
		}
		value, err := decode(raw)
		if err != nil {
			return nil, apperror.BadRequest("Invalid value for field " + name)
		}
		s.Set(name, value)
	}
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) Toggle(ctx context.Context, userID string, flow domain.FlowName, req *domain.ToggleRequest) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}

	ts, ok := spec.toggles[req.Field]
	if !ok {
		return nil, apperror.BadRequest("Field is not toggleable: " + req.Field)
	}
	if ts.known != nil && !ts.known(req.Value) {
		return nil, apperror.BadRequest("Unknown option: " + req.Value)
	}

	s.Update(func(fields wizard.FieldValues) {
		fields[req.Field] = wizard.ToggleCapped(asStringSlice(fields[req.Field]), req.Value, ts.cap)
	})
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) ToggleAvailability(ctx context.Context, userID string, flow domain.FlowName, req *domain.AvailabilityToggleRequest) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}
	if !spec.hasAvailability {
		return nil, apperror.BadRequest("This flow has no availability grid")
	}
	if !catalog.IsDay(req.Day) || !catalog.IsTimeSlot(req.Slot) {
		return nil, apperror.BadRequest("Unknown availability cell")
	}

	key := codec.AvailabilityKey(req.Day, req.Slot)
	s.Update(func(fields wizard.FieldValues) {
		// Install a fresh map; previously returned snapshots keep the old one.
		prev := asAvailability(fields["availability"])
		set := make(map[string]bool, len(prev)+1)
		for k := range prev {
			set[k] = true
		}
		if set[key] {
			delete(set, key)
		} else {
			set[key] = true
		}
		fields["availability"] = set
	})
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) SetPrompt(ctx context.Context, userID string, flow domain.FlowName, req *domain.PromptRequest) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}
	if !spec.hasPrompts {
		return nil, apperror.BadRequest("This flow has no prompt slots")
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest("Invalid prompt: " + err.Error())
	}
	if req.Prompt != "" && !catalog.IsKnownPrompt(req.Prompt) {
		return nil, apperror.BadRequest("Unknown prompt")
	}

	var conflict bool
	s.Update(func(fields wizard.FieldValues) {
		prev := asPrompts(fields["prompts"])
		// A prompt already used in another slot cannot be selected again.
		if req.Prompt != "" {
			for i, p := range prev {
				if i != req.Slot && p.Prompt == req.Prompt {
					conflict = true
					return
				}
			}
		}
		prompts := make([]domain.PromptAnswer, len(prev))
		copy(prompts, prev)
		prompts[req.Slot] = domain.PromptAnswer{Prompt: req.Prompt, Answer: req.Answer}
		fields["prompts"] = prompts
	})
	if conflict {
		return nil, apperror.BadRequest("Prompt already used in another slot")
	}
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) Attach(ctx context.Context, userID string, flow domain.FlowName, field, filename, contentType string, data []byte) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}

	as, ok := spec.attach[field]
	if !ok {
		return nil, apperror.BadRequest("Field does not accept uploads: " + field)
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("Empty file")
	}

	pending := len(s.AttachmentsFor(field))
	existing := len(asStringSlice(s.Get(field)))
	if pending+existing >= as.max {
		return nil, apperror.BadRequest("Upload limit reached for " + field)
	}

	s.Attach(wizard.Attachment{
		Field:       field,
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	})
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) Advance(ctx context.Context, userID string, flow domain.FlowName) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}

	submit, err := s.Advance()
	if err != nil {
		if errors.Is(err, wizard.ErrStepInvalid) {
			return nil, apperror.BadRequest("Complete this step before continuing")
		}
		return nil, apperror.Internal(err)
	}
	return u.finish(ctx, userID, flow, spec, s, submit)
}

func (u *flowUsecase) Retreat(ctx context.Context, userID string, flow domain.FlowName) (*domain.FlowState, error) {
	_, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}
	s.Retreat()
	return flowState(flow, s, false), nil
}

func (u *flowUsecase) Skip(ctx context.Context, userID string, flow domain.FlowName) (*domain.FlowState, error) {
	spec, s, err := u.session(ctx, userID, flow)
	if err != nil {
		return nil, err
	}

	submit, err := s.Skip()
	if err != nil {
		if errors.Is(err, wizard.ErrSkipNotAllowed) {
			return nil, apperror.BadRequest("This step cannot be skipped")
		}
		return nil, apperror.Internal(err)
	}
	return u.finish(ctx, userID, flow, spec, s, submit)
}

// finish runs the flow's submission compiler when the last step was passed.
// On failure the session is retained so the user can retry; on success the
// session is completed, which is a no-op if it was replaced meanwhile.
func (u *flowUsecase) finish(ctx context.Context, userID string, flow domain.FlowName, spec *flowSpec, s *wizard.Session, submit bool) (*domain.FlowState, error) {
	if !submit {
		return flowState(flow, s, false), nil
	}

	if err := spec.compile(ctx, userID, s); err != nil {
		logger.Log.Error("flow submission failed",
			"flow", flow, "user_id", userID, "error", err)
		return nil, err
	}

	u.manager.Complete(s)
	logger.Log.Info("flow submitted", "flow", flow, "user_id", userID)
	return flowState(flow, s, true), nil
}

func flowState(flow domain.FlowName, s *wizard.Session, completed bool) *domain.FlowState {
	snap := s.Snapshot()
	return &domain.FlowState{
		Flow:       flow,
		Step:       snap.Step,
		TotalSteps: snap.TotalSteps,
		StepName:   snap.StepName,
		CanSkip:    snap.CanSkip,
		StepValid:  snap.StepValid,
		Fields:     snap.Fields,
		Completed:  completed,
	}
}

// ---- field value coercion ----

func asStringSlice(v any) []string {
	s, _ := v.([]string)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	n, _ := v.(int)
	return n
}

func asAvailability(v any) map[string]bool {
	if set, ok := v.(map[string]bool); ok {
		return set
	}
	return map[string]bool{}
}

func asPrompts(v any) []domain.PromptAnswer {
	if p, ok := v.([]domain.PromptAnswer); ok && len(p) == catalog.PromptSlots {
		return p
	}
	return make([]domain.PromptAnswer, catalog.PromptSlots)
}

func asExperience(v any) []domain.ExperienceEntry {
	e, _ := v.([]domain.ExperienceEntry)
	return e
}

func asEducation(v any) []domain.EducationEntry {
	e, _ := v.([]domain.EducationEntry)
	return e
}

// ---- raw JSON field decoders ----

func decodeString(raw json.RawMessage) (any, error) {
	var s string
	err := json.Unmarshal(raw, &s)
	return s, err
}

func decodeStringSlice(raw json.RawMessage) (any, error) {
	var s []string
	err := json.Unmarshal(raw, &s)
	return s, err
}

func decodeInt(raw json.RawMessage) (any, error) {
	var n int
	err := json.Unmarshal(raw, &n)
	return n, err
}

func decodeExperience(raw json.RawMessage) (any, error) {
	var e []domain.ExperienceEntry
	err := json.Unmarshal(raw, &e)
	return e, err
}

func decodeEducation(raw json.RawMessage) (any, error) {
	var e []domain.EducationEntry
	err := json.Unmarshal(raw, &e)
	return e, err
}

func decodeStringIn(valid func(string) bool) fieldDecoder {
	return func(raw json.RawMessage) (any, error) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		if s != "" && !valid(s) {
			return nil, errors.New("value not in catalog")
		}
		return s, nil
	}
}
