package safety_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rowanvale/toolloop/internal/safety"
)

func TestValidateRelPath_AllowsInsideRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "ok.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}

	got, err := safety.ValidateRelPath(root, "ok.txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if filepath.Dir(got) != root {
		t.Fatalf("resolved outside root: %s", got)
	}
}

func TestValidateRelPath_RejectsAbsolute(t *testing.T) {
	root := t.TempDir()
	_, err := safety.ValidateRelPath(root, "/etc/passwd")
	assertToolErrorCode(t, err, "ERR_PATH_OUTSIDE_SANDBOX")
}

func TestValidateRelPath_RejectsTraversal(t *testing.T) {
	root := t.TempDir()
	_, err := safety.ValidateRelPath(root, "../outside.txt")
	assertToolErrorCode(t, err, "ERR_PATH_OUTSIDE_SANDBOX")
}

func TestValidateRelPath_DeniesGitDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("prep: %v", err)
	}
	_, err := safety.ValidateRelPath(root, ".git/config")
	assertToolErrorCode(t, err, "ERR_DENIED_READ")
}

func TestResolveRoot_EmptyDefaultsToCwd(t *testing.T) {
	got, err := safety.ResolveRoot("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute root, got %s", got)
	}
}

func assertToolErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var te safety.ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if te.Code != code {
		t.Fatalf("code mismatch: got %s want %s", te.Code, code)
	}
}
