package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func threeStepDef() *Definition {
	return &Definition{
		Flow: "test",
		Steps: []Step{
			{Name: "one", CanSkip: true},
			{Name: "two", Valid: func(f FieldValues) bool { return f["ready"] == true }},
			{Name: "three", CanSkip: true},
		},
	}
}

func TestToggleCapped(t *testing.T) {
	t.Run("adds below the cap", func(t *testing.T) {
		got := ToggleCapped([]string{"a"}, "b", 3)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("removes an existing value", func(t *testing.T) {
		got := ToggleCapped([]string{"a", "b", "c"}, "b", 3)
		assert.Equal(t, []string{"a", "c"}, got)
	})

	t.Run("is inert at the cap", func(t *testing.T) {
		selected := []string{"a", "b", "c"}
		got := ToggleCapped(selected, "d", 3)
		assert.Equal(t, selected, got)
	})

	t.Run("removal still works at the cap", func(t *testing.T) {
		got := ToggleCapped([]string{"a", "b", "c"}, "c", 3)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		selected := []string{"a"}
		_ = ToggleCapped(selected, "b", 3)
		assert.Equal(t, []string{"a"}, selected)
	})
}

func TestSessionStepBounds(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Start(threeStepDef(), "u1", nil)

	t.Run("starts at step 1", func(t *testing.T) {
		assert.Equal(t, 1, s.Snapshot().Step)
	})

	t.Run("retreat at step 1 is a no-op", func(t *testing.T) {
		s.Retreat()
		assert.Equal(t, 1, s.Snapshot().Step)
	})

	t.Run("advance moves forward", func(t *testing.T) {
		submit, err := s.Advance()
		assert.NoError(t, err)
		assert.False(t, submit)
		assert.Equal(t, 2, s.Snapshot().Step)
	})

	t.Run("advance is gated on validity", func(t *testing.T) {
		_, err := s.Advance()
		assert.ErrorIs(t, err, ErrStepInvalid)
		assert.Equal(t, 2, s.Snapshot().Step)
	})

	t.Run("skip is refused on a non-skippable step", func(t *testing.T) {
		_, err := s.Skip()
		assert.ErrorIs(t, err, ErrSkipNotAllowed)
	})

	t.Run("valid step advances", func(t *testing.T) {
		s.Set("ready", true)
		submit, err := s.Advance()
		assert.NoError(t, err)
		assert.False(t, submit)
		assert.Equal(t, 3, s.Snapshot().Step)
	})

	t.Run("advance at the last step signals submit without moving", func(t *testing.T) {
		submit, err := s.Advance()
		assert.NoError(t, err)
		assert.True(t, submit)
		assert.Equal(t, 3, s.Snapshot().Step)
	})

	t.Run("skip at the last skippable step also submits", func(t *testing.T) {
		submit, err := s.Skip()
		assert.NoError(t, err)
		assert.True(t, submit)
	})
}

func TestSessionFields(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Start(threeStepDef(), "u1", FieldValues{"seed": "kept"})

	assert.Equal(t, "kept", s.Get("seed"))

	s.Update(func(f FieldValues) {
		f["list"] = ToggleCapped(nil, "x", 2)
	})
	assert.Equal(t, []string{"x"}, s.Get("list"))

	t.Run("snapshot copies the field map", func(t *testing.T) {
		snap := s.Snapshot()
		snap.Fields["seed"] = "changed"
		assert.Equal(t, "kept", s.Get("seed"))
	})
}

func TestSessionAttachments(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Start(threeStepDef(), "u1", nil)

	s.Attach(Attachment{Field: "photos", Filename: "a.jpg"})
	s.Attach(Attachment{Field: "resume", Filename: "cv.pdf"})
	s.Attach(Attachment{Field: "photos", Filename: "b.jpg"})

	photos := s.AttachmentsFor("photos")
	assert.Len(t, photos, 2)
	assert.Equal(t, "a.jpg", photos[0].Filename)
	assert.Equal(t, "b.jpg", photos[1].Filename)
	assert.Len(t, s.Attachments(), 3)
}

func TestManagerGenerations(t *testing.T) {
	m := NewManager(time.Hour)

	t.Run("start replaces the previous session", func(t *testing.T) {
		old := m.Start(threeStepDef(), "u1", nil)
		fresh := m.Start(threeStepDef(), "u1", nil)

		got, ok := m.Get("test", "u1")
		assert.True(t, ok)
		assert.Same(t, fresh, got)

		// Completing the stale session must not remove the fresh one.
		m.Complete(old)
		_, ok = m.Get("test", "u1")
		assert.True(t, ok)
	})

	t.Run("complete removes the current session", func(t *testing.T) {
		s := m.Start(threeStepDef(), "u2", nil)
		m.Complete(s)
		_, ok := m.Get("test", "u2")
		assert.False(t, ok)
	})

	t.Run("sessions are keyed per flow and user", func(t *testing.T) {
		m.Start(threeStepDef(), "u3", nil)
		_, ok := m.Get("other", "u3")
		assert.False(t, ok)
		_, ok = m.Get("test", "u4")
		assert.False(t, ok)
	})
}

func TestSessionExpiry(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Start(threeStepDef(), "u1", nil)

	now := time.Now()
	assert.False(t, s.expired(time.Minute, now))
	assert.True(t, s.expired(time.Minute, now.Add(2*time.Minute)))

	// Activity refreshes the idle clock.
	s.Set("k", "v")
	assert.False(t, s.expired(time.Minute, now.Add(30*time.Second)))
}
