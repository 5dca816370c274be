package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAcquireLockExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json.lock")

	release, err := acquireLock(path)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}

	_, err = acquireLock(path)
	if err == nil || !strings.Contains(err.Error(), "another game is running") {
		t.Fatalf("expected second lock to fail, got %v", err)
	}

	release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("release must remove the lock file")
	}

	release, err = acquireLock(path)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	release()
}
