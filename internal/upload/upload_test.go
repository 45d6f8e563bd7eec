package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKinds(t *testing.T) {
	kinds := Kinds()
	want := []string{"audio", "image", "video"}
	if len(kinds) != len(want) {
		t.Fatalf("Kinds() = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		kind string
		ext  string
		want bool
	}{
		{"image", "png", true},
		{"image", "PNG", true},
		{"image", "gif", false},
		{"video", "mp4", true},
		{"video", "mkv", false},
		{"audio", "wav", true},
		{"audio", "flac", false},
		{"document", "pdf", false},
	}

	for _, tt := range tests {
		if got := Allowed(tt.kind, tt.ext); got != tt.want {
			t.Errorf("Allowed(%s, %s) = %v, want %v", tt.kind, tt.ext, got, tt.want)
		}
	}
}

func TestStage(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.PNG")
	if err := os.WriteFile(src, []byte("image bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	staged, err := Stage(src, dir, "image")
	if err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	base := filepath.Base(staged)
	if !strings.HasPrefix(base, "image_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("staged name = %s, want image_{uuid}.png", base)
	}

	data, err := os.ReadFile(staged)
	if err != nil {
		t.Fatalf("reading staged file: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("staged content = %q", data)
	}

	// Staging the same source twice must not collide.
	second, err := Stage(src, dir, "image")
	if err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	if second == staged {
		t.Error("two stagings produced the same path")
	}
}

func TestStage_Rejections(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Stage(src, t.TempDir(), "image"); err == nil {
		t.Error("Stage() should reject a .txt file as an image")
	}
	if _, err := Stage(src, t.TempDir(), "hologram"); err == nil {
		t.Error("Stage() should reject an unknown kind")
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a"), make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b"), make([]byte, 50), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize() error = %v", err)
	}
	if size != 150 {
		t.Errorf("DirSize() = %d, want 150", size)
	}

	size, err = DirSize(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("DirSize() on missing dir error = %v", err)
	}
	if size != 0 {
		t.Errorf("DirSize() on missing dir = %d, want 0", size)
	}
}

func TestCleanupOldest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	names := []string{"oldest", "middle", "newest"}
	for i, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, make([]byte, 100), 0644); err != nil {
			t.Fatal(err)
		}
		stamp := now.Add(time.Duration(i-len(names)) * time.Hour)
		if err := os.Chtimes(path, stamp, stamp); err != nil {
			t.Fatal(err)
		}
	}

	// Cap at 250 bytes: only the oldest file should go.
	if err := CleanupOldest(dir, 250); err != nil {
		t.Fatalf("CleanupOldest() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "oldest")); !os.IsNotExist(err) {
		t.Error("oldest file should have been removed")
	}
	for _, name := range []string{"middle", "newest"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s should survive: %v", name, err)
		}
	}
}

func TestCleanupOldest_UnderCap(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep"), make([]byte, 10), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CleanupOldest(dir, 1000); err != nil {
		t.Fatalf("CleanupOldest() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep")); err != nil {
		t.Errorf("file under cap should survive: %v", err)
	}
}
