package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/tend/pkg/core"
)

func TestSaveAndLoad(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if err := s.Save(ctx, "notes", []byte("[]")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Load(ctx, "notes")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Load() = %s, want []", got)
	}
}

func TestLoadMissingRecord(t *testing.T) {
	s := NewStore()

	_, err := s.Load(context.Background(), "notes")
	if !errors.Is(err, core.ErrNoRecord) {
		t.Errorf("Load() error = %v, want core.ErrNoRecord", err)
	}
}

func TestRecordsDoNotAliasCallerBuffers(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	buf := []byte("abc")
	if err := s.Save(ctx, "notes", buf); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'x'

	got, err := s.Load(ctx, "notes")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Errorf("Load() = %s, stored record must not alias the caller's buffer", got)
	}

	got[0] = 'y'
	again, _ := s.Load(ctx, "notes")
	if string(again) != "abc" {
		t.Errorf("Load() = %s, returned record must be a copy", again)
	}
}
