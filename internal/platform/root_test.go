package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, "notes.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(vault, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot() failed: %v", err)
	}
	if got != vault {
		t.Errorf("FindRoot() = %q, want %q", got, vault)
	}
}

func TestFindRootByConfigFile(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, ConfigFileName), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(vault)
	if err != nil {
		t.Fatalf("FindRoot() failed: %v", err)
	}
	if got != vault {
		t.Errorf("FindRoot() = %q, want %q", got, vault)
	}
}

func TestFindRootNotFound(t *testing.T) {
	// A bare temp dir has no markers anywhere up to /.
	if root, err := FindRoot(t.TempDir()); err == nil {
		t.Errorf("FindRoot() = %q, want an error for a markerless tree", root)
	}
}

func TestResolveVaultPathReRootsIntoTemp(t *testing.T) {
	got := ResolveVaultPath("/home/user/my-vault", true)

	want := filepath.Join(os.TempDir(), "tend-dev", "my-vault")
	if got != want {
		t.Errorf("ResolveVaultPath() = %q, want %q", got, want)
	}
}

func TestResolveVaultPathTrustsTempPaths(t *testing.T) {
	inTemp := filepath.Join(os.TempDir(), "already-safe")

	if got := ResolveVaultPath(inTemp, true); got != inTemp {
		t.Errorf("ResolveVaultPath() = %q, paths under the temp root pass through", got)
	}
}

func TestResolveVaultPathWithoutForce(t *testing.T) {
	if got := ResolveVaultPath("/home/user/my-vault", false); got != "/home/user/my-vault" {
		t.Errorf("ResolveVaultPath() = %q, want the path unchanged", got)
	}
	if got := ResolveVaultPath("", false); got != "." {
		t.Errorf("ResolveVaultPath(\"\") = %q, want .", got)
	}
}
