package copyfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyIntoCopiesFilesAndCreatesDirs(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	mustWrite(t, filepath.Join(src, ".env"), "PORT=3000\n")
	mustWrite(t, filepath.Join(src, "config", "local.json"), "{}\n")

	statuses := CopyInto(src, []string{".env", "config/local.json"}, []string{dest})

	for _, s := range statuses {
		if s.Err != nil {
			t.Errorf("%s → %s: %v", s.File, s.Dest, s.Err)
		}
	}
	got, err := os.ReadFile(filepath.Join(dest, ".env"))
	if err != nil {
		t.Fatalf("read copied .env: %v", err)
	}
	if string(got) != "PORT=3000\n" {
		t.Errorf("copied content = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dest, "config", "local.json")); err != nil {
		t.Errorf("nested file not copied: %v", err)
	}
}

func TestCopyIntoRecordsMissingSource(t *testing.T) {
	statuses := CopyInto(t.TempDir(), []string{".env"}, []string{t.TempDir()})
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if statuses[0].Err == nil {
		t.Error("missing source reported no error")
	}
}

func TestCopyIntoMultipleDestinations(t *testing.T) {
	src := t.TempDir()
	mustWrite(t, filepath.Join(src, ".env"), "A=1\n")
	dests := []string{t.TempDir(), t.TempDir(), t.TempDir()}

	statuses := CopyInto(src, []string{".env"}, dests)

	if len(statuses) != 3 {
		t.Fatalf("got %d statuses, want 3", len(statuses))
	}
	for _, d := range dests {
		if _, err := os.Stat(filepath.Join(d, ".env")); err != nil {
			t.Errorf("destination %s missing copy: %v", d, err)
		}
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
