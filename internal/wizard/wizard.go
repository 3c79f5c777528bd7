// Package wizard is the generic step-sequencer behind the profile flows.
// A flow is a static Definition (ordered steps with validity predicates and
// skip flags) plus a per-user Session holding the working field values. The
// personal, professional, company and completion flows all run on this one
// engine; only their definitions and field handling differ.
package wizard

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrStepInvalid is returned when Advance is attempted while the active
	// step's validity predicate fails. Skip and Retreat are never gated.
	ErrStepInvalid = errors.New("current step is not valid")

	// ErrSkipNotAllowed is returned when Skip is attempted on a step that
	// does not allow skipping.
	ErrSkipNotAllowed = errors.New("step cannot be skipped")
)

// FieldValues maps field names to their typed working values. Container
// values (slices, maps) are replaced on edit, never mutated in place, so the
// field map in a Snapshot can be read without the session lock.
type FieldValues map[string]any

// Step is one static wizard step. Valid is evaluated against the session's
// current field values; a nil predicate means the step is always valid.
type Step struct {
	Name    string
	Render  string
	CanSkip bool
	Valid   func(FieldValues) bool
}

func (s Step) valid(fields FieldValues) bool {
	return s.Valid == nil || s.Valid(fields)
}

// Definition is a flow's static step list. Definitions are built once at
// startup and never mutated.
type Definition struct {
	Flow  string
	Steps []Step
}

// Total returns the step count.
func (d *Definition) Total() int { return len(d.Steps) }

// Attachment is a pending binary upload tracked separately from field
// values until submission.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// State is the read-only snapshot a session exposes to its host.
type State struct {
	Flow       string
	Step       int
	TotalSteps int
	StepName   string
	CanSkip    bool
	StepValid  bool
	Fields     FieldValues
}

// Session is one in-flight wizard instance. Sessions live only in memory;
// abandoning one discards all in-flight edits, and only a previously
// completed record (loaded at start) survives a restart.
type Session struct {
	mu          sync.Mutex
	def         *Definition
	userID      string
	generation  uint64
	step        int
	fields      FieldValues
	attachments []Attachment
	touched     time.Time
}

func newSession(def *Definition, userID string, initial FieldValues, generation uint64) *Session {
	if initial == nil {
		initial = FieldValues{}
	}
	return &Session{
		def:        def,
		userID:     userID,
		generation: generation,
		step:       1,
		fields:     initial,
		touched:    time.Now(),
	}
}

// UserID returns the owning user.
func (s *Session) UserID() string { return s.userID }

// Snapshot returns the session's current state with a copy of the field map.
// The container values inside it stay valid under concurrent edits because
// edits replace containers rather than mutating them.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := make(FieldValues, len(s.fields))
	for k, v := range s.fields {
		fields[k] = v
	}
	active := s.def.Steps[s.step-1]
	return State{
		Flow:       s.def.Flow,
		Step:       s.step,
		TotalSteps: s.def.Total(),
		StepName:   active.Name,
		CanSkip:    active.CanSkip,
		StepValid:  active.valid(s.fields),
		Fields:     fields,
	}
}

// Get reads one field value.
func (s *Session) Get(name string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[name]
}

// Set writes one field value.
func (s *Session) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[name] = value
	s.touched = time.Now()
}

// Update applies fn to the field map under the session lock, for
// read-modify-write edits such as capped toggles. fn must install new
// container values instead of editing the stored ones.
func (s *Session) Update(fn func(FieldValues)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.fields)
	s.touched = time.Now()
}

// Advance moves forward one step, gated on the active step's validity.
// At the last step it does not move; it reports submit=true instead, and the
// caller runs the flow's submission exactly once per call.
func (s *Session) Advance() (submit bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.def.Steps[s.step-1].valid(s.fields) {
		return false, ErrStepInvalid
	}
	return s.forward()
}

// Skip is Advance without the validity gate, available only on steps marked
// skippable.
func (s *Session) Skip() (submit bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.def.Steps[s.step-1].CanSkip {
		return false, ErrSkipNotAllowed
	}
	return s.forward()
}

func (s *Session) forward() (bool, error) {
	s.touched = time.Now()
	if s.step < s.def.Total() {
		s.step++
		return false, nil
	}
	return true, nil
}

// Retreat moves back one step; at step 1 it is a no-op.
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > 1 {
		s.step--
	}
	s.touched = time.Now()
}

// Attach records a pending upload.
func (s *Session) Attach(att Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachments = append(s.attachments, att)
	s.touched = time.Now()
}

// Attachments returns a copy of the pending uploads.
func (s *Session) Attachments() []Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Attachment, len(s.attachments))
	copy(out, s.attachments)
	return out
}

// AttachmentsFor returns the pending uploads for one field, in order.
func (s *Session) AttachmentsFor(field string) []Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Attachment
	for _, a := range s.attachments {
		if a.Field == field {
			out = append(out, a)
		}
	}
	return out
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched) > ttl
}
