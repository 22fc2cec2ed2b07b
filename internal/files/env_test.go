package files

import (
	"path/filepath"
	"testing"
)

func TestResolveBasePathHonorsAmigosHome(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom-root")

	t.Setenv(HomeEnv, custom)

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, custom)
	}
}

func TestResolveBasePathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "~/amigos-data")

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(home, "amigos-data")
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}

func TestResolveBasePathDefaultsToHomeDotAmigos(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "")

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName)
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}
