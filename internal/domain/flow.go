package domain

import (
	"context"
	"encoding/json"
)

// FlowName identifies one of the wizard flow definitions.
type FlowName string

const (
	FlowPersonal     FlowName = "personal"     // 7 steps, all skippable
	FlowProfessional FlowName = "professional" // 5 steps, all skippable
	FlowCompany      FlowName = "company"      // 5 steps, only step 5 skippable
	FlowCompletion   FlowName = "completion"   // 8 steps, submit discards (deferred feature)
)

// ValidFlowNames returns every registered flow.
func ValidFlowNames() []FlowName {
	return []FlowName{FlowPersonal, FlowProfessional, FlowCompany, FlowCompletion}
}

// IsValid checks if the flow name is registered.
func (f FlowName) IsValid() bool {
	for _, valid := range ValidFlowNames() {
		if f == valid {
			return true
		}
	}
	return false
}

// FlowState is the read surface a wizard exposes to its host: current step,
// step count, field values, and whether the last advance submitted the flow.
type FlowState struct {
	Flow       FlowName       `json:"flow"`
	Step       int            `json:"step"`
	TotalSteps int            `json:"total_steps"`
	StepName   string         `json:"step_name"`
	CanSkip    bool           `json:"can_skip"`
	StepValid  bool           `json:"step_valid"`
	Fields     map[string]any `json:"fields"`
	Completed  bool           `json:"completed"`
}

// ToggleRequest toggles one value in a capped multi-select field.
type ToggleRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// AvailabilityToggleRequest toggles one cell of the 7x3 availability grid.
type AvailabilityToggleRequest struct {
	Day  string `json:"day" validate:"required"`
	Slot string `json:"slot" validate:"required"`
}

// PromptRequest fills one of the three fixed personality prompt slots.
type PromptRequest struct {
	Slot   int    `json:"slot" validate:"min=0,max=2"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer" validate:"max=150"`
}

// FlowUsecase is the only public surface of a wizard: start/read state,
// field edits, and the advance/retreat/skip transitions. Advance on the last
// step compiles and persists the flow's working state.
type FlowUsecase interface {
	Start(ctx context.Context, userID string, flow FlowName) (*FlowState, error)
	State(ctx context.Context, userID string, flow FlowName) (*FlowState, error)
	SetFields(ctx context.Context, userID string, flow FlowName, fields map[string]json.RawMessage) (*FlowState, error)
	Toggle(ctx context.Context, userID string, flow FlowName, req *ToggleRequest) (*FlowState, error)
	ToggleAvailability(ctx context.Context, userID string, flow FlowName, req *AvailabilityToggleRequest) (*FlowState, error)
	SetPrompt(ctx context.Context, userID string, flow FlowName, req *PromptRequest) (*FlowState, error)
	Attach(ctx context.Context, userID string, flow FlowName, field, filename, contentType string, data []byte) (*FlowState, error)
	Advance(ctx context.Context, userID string, flow FlowName) (*FlowState, error)
	Retreat(ctx context.Context, userID string, flow FlowName) (*FlowState, error)
	Skip(ctx context.Context, userID string, flow FlowName) (*FlowState, error)
}

// CompletionSummary carries the dashboard progress percentages.
type CompletionSummary struct {
	Personal     *int `json:"personal,omitempty"`
	Professional *int `json:"professional,omitempty"`
	Company      *int `json:"company,omitempty"`
}

type CompletionUsecase interface {
	Summary(ctx context.Context, userID string) (*CompletionSummary, error)
}

// ObjectStore issues public URLs for uploaded files, namespaced per owner.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, ownerID, filename string, data []byte) (string, error)
}

// Storage buckets used by the flows.
const (
	BucketAvatars      = "avatars"
	BucketResumes      = "resumes"
	BucketCompanyLogos = "company-logos"
)
