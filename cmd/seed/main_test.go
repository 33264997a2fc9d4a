package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunFailsOnBadInput(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("clients:\n  - name: A\n    email: a@a.test\n    company: A\n    status: bogus\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := map[string]struct{ file, owner string }{
		"no owner":     {bad, ""},
		"missing file": {filepath.Join(dir, "nope.yaml"), "acct"},
		"invalid doc":  {bad, "acct"},
	}
	for name, tc := range cases {
		if err := run(tc.file, tc.owner); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRunSeedsMemoryStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_MODE", "test")
	file := filepath.Join(t.TempDir(), "book.yaml")
	if err := os.WriteFile(file, []byte("clients:\n  - name: A\n    email: a@a.test\n    company: A\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := run(file, "acct"); err != nil {
		t.Fatalf("run: %v", err)
	}
}
