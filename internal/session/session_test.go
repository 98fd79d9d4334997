package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenWithoutFile(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("fresh store must be unauthenticated")
	}
	if store.Token() != "" {
		t.Fatalf("fresh store token = %q, want empty", store.Token())
	}
}

func TestTokensSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetTokens("access-abc", "refresh-def"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.IsAuthenticated() {
		t.Fatalf("reopened store must be authenticated")
	}
	if got := reopened.Token(); got != "access-abc" {
		t.Fatalf("token = %q, want access-abc", got)
	}
}

func TestInvalidateKeepsRefreshToken(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetTokens("access-abc", "refresh-def"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if err := store.Invalidate(); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("invalidated store must be unauthenticated")
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.data.RefreshToken != "refresh-def" {
		t.Fatalf("refresh token must survive invalidation")
	}
}

func TestLogoutClearsBothKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.SetTokens("access-abc", "refresh-def"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	if string(raw) != "{}\n" {
		t.Fatalf("logout must empty the session file, got %q", string(raw))
	}
}
