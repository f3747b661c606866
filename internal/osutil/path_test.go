package osutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeFilePathExpandsTilde(t *testing.T) {
	// not parallel because it messes with env vars
	origHome := os.Getenv("HOME")
	t.Cleanup(func() {
		os.Setenv("HOME", origHome) //nolint:errcheck // Restoring $HOME is best effort.
	})

	os.Setenv("HOME", "/tmp/testhome") //nolint:errcheck

	got, err := NormalizeFilePath("~/docs/pipelines.md")
	if err != nil {
		t.Fatalf("NormalizeFilePath(~/docs/pipelines.md) error = %v", err)
	}
	if want := filepath.FromSlash("/tmp/testhome/docs/pipelines.md"); got != want {
		t.Errorf("NormalizeFilePath(~/docs/pipelines.md) = %q, want %q", got, want)
	}
}

func TestNormalizeFilePathExpandsEnv(t *testing.T) {
	t.Setenv("ADFDOC_TEST_DIR", "/var/pipelines")

	got, err := NormalizeFilePath("$ADFDOC_TEST_DIR/out.md")
	if err != nil {
		t.Fatalf("NormalizeFilePath($ADFDOC_TEST_DIR/out.md) error = %v", err)
	}
	if want := filepath.FromSlash("/var/pipelines/out.md"); got != want {
		t.Errorf("NormalizeFilePath($ADFDOC_TEST_DIR/out.md) = %q, want %q", got, want)
	}
}
