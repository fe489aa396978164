package pomodoro

import (
	"testing"
	"time"
)

func TestTickCountsDownAndExpires(t *testing.T) {
	var gotID int64
	calls := 0
	s := NewSession(Config{
		Duration: 3 * time.Second,
		NoteID:   42,
		OnExpire: func(noteID int64) {
			gotID = noteID
			calls++
		},
	})

	if !s.Toggle() {
		t.Fatal("Toggle() should start the countdown")
	}

	if s.Tick() {
		t.Error("Tick() expired after 1s, want 2s remaining")
	}
	if got := s.Remaining(); got != 2*time.Second {
		t.Errorf("Remaining() = %v, want 2s", got)
	}
	s.Tick()
	if !s.Tick() {
		t.Error("Tick() should report expiry at zero")
	}

	if !s.Expired() {
		t.Error("Expired() = false after countdown ran out")
	}
	if gotID != 42 || calls != 1 {
		t.Errorf("OnExpire called %d times with id %d, want once with 42", calls, gotID)
	}

	// Further ticks keep reporting expiry without firing the callback again.
	if !s.Tick() {
		t.Error("Tick() on an expired session should report true")
	}
	if calls != 1 {
		t.Errorf("OnExpire called %d times, want exactly 1", calls)
	}
}

func TestUnboundSessionNeverInvokesCallback(t *testing.T) {
	calls := 0
	s := NewSession(Config{
		Duration: time.Second,
		OnExpire: func(int64) { calls++ },
	})

	s.Toggle()
	s.Tick()

	if !s.Expired() {
		t.Fatal("session should have expired")
	}
	if calls != 0 {
		t.Errorf("OnExpire called %d times for an unbound session, want 0", calls)
	}
}

func TestPausedSessionIgnoresTicks(t *testing.T) {
	s := NewSession(Config{Duration: 5 * time.Second})

	// Sessions start paused.
	s.Tick()
	s.Tick()
	if got := s.Remaining(); got != 5*time.Second {
		t.Errorf("Remaining() = %v while paused, want 5s", got)
	}

	s.Toggle()
	s.Tick()
	s.Toggle() // pause again
	s.Tick()
	if got := s.Remaining(); got != 4*time.Second {
		t.Errorf("Remaining() = %v, want 4s", got)
	}
}

func TestToggleOnExpiredSessionStaysStopped(t *testing.T) {
	s := NewSession(Config{Duration: time.Second})
	s.Toggle()
	s.Tick()

	if s.Toggle() {
		t.Error("Toggle() on an expired session must not resume it")
	}
}

func TestReset(t *testing.T) {
	s := NewSession(Config{Duration: 2 * time.Second})
	s.Toggle()
	s.Tick()
	s.Tick()

	s.Reset()

	if s.Expired() {
		t.Error("Expired() = true after Reset")
	}
	if got := s.Remaining(); got != 2*time.Second {
		t.Errorf("Remaining() = %v after Reset, want 2s", got)
	}
	// Reset leaves the session paused.
	s.Tick()
	if got := s.Remaining(); got != 2*time.Second {
		t.Errorf("Remaining() = %v, Reset should pause the countdown", got)
	}
}

func TestDefaultDuration(t *testing.T) {
	s := NewSession(Config{})
	if got := s.Remaining(); got != DefaultDuration {
		t.Errorf("Remaining() = %v, want %v", got, DefaultDuration)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{9 * time.Second, "00:09"},
	}
	for _, tt := range tests {
		s := NewSession(Config{Duration: tt.duration})
		if got := s.Display(); got != tt.want {
			t.Errorf("Display() = %q for %v, want %q", got, tt.duration, tt.want)
		}
	}
}
