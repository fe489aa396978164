package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/tend/pkg/core"
)

func TestInitializeCreatesVaultDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault")
	s := NewStore(Config{Path: path})

	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("vault directory was not created: %v", err)
	}
}

func TestInitializeMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	s := NewStore(Config{Path: missing, MustExist: true})
	if err := s.Initialize(context.Background()); err == nil {
		t.Error("Initialize() should fail for a missing vault when MustExist is set")
	}

	file := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	s = NewStore(Config{Path: file, MustExist: true})
	if err := s.Initialize(context.Background()); err == nil {
		t.Error("Initialize() should fail when the vault path is a file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := NewStore(Config{Path: t.TempDir()})
	ctx := context.Background()

	want := []byte(`[{"id":1,"text":"call bob"}]`)
	if err := s.Save(ctx, "notes", want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Load(ctx, "notes")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Load() = %s, want %s", got, want)
	}

	// Records land in name + extension files.
	if _, err := os.Stat(filepath.Join(s.Path, "notes.json")); err != nil {
		t.Errorf("expected notes.json on disk: %v", err)
	}
}

func TestLoadMissingRecord(t *testing.T) {
	s := NewStore(Config{Path: t.TempDir()})

	_, err := s.Load(context.Background(), "notes")
	if !errors.Is(err, core.ErrNoRecord) {
		t.Errorf("Load() error = %v, want core.ErrNoRecord", err)
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	s := NewStore(Config{Path: t.TempDir()})
	ctx := context.Background()

	if err := s.Save(ctx, "notes", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "notes", []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx, "notes")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("Load() = %s, want new", got)
	}

	// No temp files may survive a completed write.
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tempFilePrefix) {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestCustomExtension(t *testing.T) {
	// The dot is optional in config.
	s := NewStore(Config{Path: t.TempDir(), Ext: "yaml"})

	if err := s.Save(context.Background(), "notes", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(s.Path, "notes.yaml")); err != nil {
		t.Errorf("expected notes.yaml on disk: %v", err)
	}
}

func TestRecordName(t *testing.T) {
	s := NewStore(Config{Path: "/vault"})

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/vault/notes.json", "notes", true},
		{"/vault/productivityData.json", "productivityData", true},
		{"/vault/notes.yaml", "", false},
		{"/vault/" + tempFilePrefix + "notes.json", "", false},
		{"/vault/README.md", "", false},
	}
	for _, tt := range tests {
		got, ok := s.recordName(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("recordName(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}
