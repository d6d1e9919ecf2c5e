package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kinderly/kinderly/internal/storage"
	"github.com/kinderly/kinderly/internal/storage/sqlite"
)

// newTestStore creates a throwaway sqlite store for one test.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "kinderly-service-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// wantKind asserts that err is a service error of the given kind.
func wantKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected service error, got %T: %v", err, err)
	}
	if svcErr.Kind != kind {
		t.Fatalf("error kind = %s, want %s (message: %s)", svcErr.Kind, kind, svcErr.Message)
	}
	return svcErr
}
