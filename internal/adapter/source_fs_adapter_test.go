package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/rehagoal/e2ecov/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "index.html"), "<html></html>\n")

	nestedDir := filepath.Join(root, "js")
	mustMkdir(t, nestedDir)
	child := filepath.Join(nestedDir, "app.js")
	writeTestFile(t, child, "var a = 1;\n")

	var visited []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	for _, want := range []string{root, nestedDir, child, filepath.Join(root, "index.html")} {
		if !containsPath(visited, want) {
			t.Fatalf("Walk() did not visit %s, visited %v", want, visited)
		}
	}
}

func TestLocalSourceFSAdapter_Walk_ContextCancelled(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "app.js"), "var a = 1;\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error {
		t.Fatalf("Walk() called fn after cancellation")
		return nil
	})
	if err != context.Canceled {
		t.Fatalf("Walk() error = %v, want %v", err, context.Canceled)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "app.js")
	content := []byte("function f() { return 1; }\n")
	writeTestBytes(t, filePath, content)

	hash, err := adapter.HashFile(context.Background(), m.Path(filePath))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	want := fmt.Sprintf("%x", sha256.Sum256(content))
	if hash != want {
		t.Fatalf("HashFile() = %s, want %s", hash, want)
	}

	if _, err := adapter.HashFile(context.Background(), m.Path(filepath.Join(dir, "missing.js"))); err == nil {
		t.Fatalf("HashFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfoAndExists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "style.css")
	writeTestFile(t, filePath, "body {}\n")

	info, err := adapter.FileInfo(ctx, m.Path(filePath))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() || info.Size() != int64(len("body {}\n")) {
		t.Fatalf("FileInfo() = dir %v size %d", info.IsDir(), info.Size())
	}

	exists, err := adapter.Exists(ctx, m.Path(filePath))
	if err != nil || !exists {
		t.Fatalf("Exists(%s) = %v, %v; want true", filePath, exists, err)
	}

	exists, err = adapter.Exists(ctx, m.Path(filepath.Join(dir, "nope")))
	if err != nil || exists {
		t.Fatalf("Exists(missing) = %v, %v; want false", exists, err)
	}
}

func TestLocalSourceFSAdapter_MkdirAllRemoveAndRemoveAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	nested := m.Path(filepath.Join(root, "reports", "coverage", "combined"))

	if err := adapter.MkdirAll(ctx, nested); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	filePath := nested.Join("coverage-combined.json")
	writeTestFile(t, string(filePath), "{}")

	if err := adapter.Remove(ctx, filePath); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := os.Stat(string(filePath)); !os.IsNotExist(err) {
		t.Fatalf("Remove() did not remove file, stat err=%v", err)
	}

	top := m.Path(filepath.Join(root, "reports"))
	if err := adapter.RemoveAll(ctx, top); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(string(top)); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() did not remove directory, stat err=%v", err)
	}
}

func TestLocalSourceFSAdapter_CopyDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "tmp")

	subDir := filepath.Join(src, "components", "tts")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	writeTestFile(t, filepath.Join(subDir, "tts.js"), "speak();\n")
	writeTestFile(t, filepath.Join(src, "index.html"), "<html></html>\n")

	scriptPath := filepath.Join(src, "run.sh")
	writeTestFile(t, scriptPath, "#!/bin/sh\n")
	if err := os.Chmod(scriptPath, 0o755); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}

	if err := adapter.CopyDir(context.Background(), m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "components", "tts", "tts.js"))
	if err != nil {
		t.Fatalf("CopyDir() did not copy nested file: %v", err)
	}

	if string(got) != "speak();\n" {
		t.Fatalf("CopyDir() copied %q, want %q", got, "speak();\n")
	}

	if _, err := os.Stat(filepath.Join(dst, "index.html")); err != nil {
		t.Fatalf("CopyDir() did not copy top-level file: %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	if err != nil {
		t.Fatalf("CopyDir() did not copy script: %v", err)
	}

	if info.Mode().Perm() != 0o755 {
		t.Fatalf("CopyDir() mode = %v, want %v", info.Mode().Perm(), os.FileMode(0o755))
	}
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestLocalSourceFSAdapter_CopyDir_FollowsDirectorySymlinks(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	shared := t.TempDir()
	writeTestFile(t, filepath.Join(shared, "lib", "voice.js"), "voice();\n")
	writeTestFile(t, filepath.Join(shared, "voice.json"), "{}\n")

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "index.html"), "<html></html>\n")
	symlinkOrSkip(t, shared, filepath.Join(src, "voices"))
	symlinkOrSkip(t, filepath.Join(shared, "voice.json"), filepath.Join(src, "config.json"))

	dst := filepath.Join(t.TempDir(), "tmp")
	if err := adapter.CopyDir(context.Background(), m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "voices", "lib", "voice.js"))
	if err != nil {
		t.Fatalf("CopyDir() did not copy through directory link: %v", err)
	}

	if string(got) != "voice();\n" {
		t.Fatalf("CopyDir() copied %q, want %q", got, "voice();\n")
	}

	info, err := os.Lstat(filepath.Join(dst, "voices"))
	if err != nil {
		t.Fatalf("Lstat() error = %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("CopyDir() staged voices as %v, want a real directory", info.Mode())
	}

	info, err = os.Lstat(filepath.Join(dst, "config.json"))
	if err != nil {
		t.Fatalf("CopyDir() did not copy file link: %v", err)
	}

	if !info.Mode().IsRegular() {
		t.Fatalf("CopyDir() staged config.json as %v, want a regular file", info.Mode())
	}
}

func TestLocalSourceFSAdapter_Walk_ReportsLinkedFilesUnderLink(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	shared := t.TempDir()
	writeTestFile(t, filepath.Join(shared, "voice.js"), "voice();\n")

	root := t.TempDir()
	symlinkOrSkip(t, shared, filepath.Join(root, "voices"))

	var files []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := filepath.Join(root, "voices", "voice.js")
	if len(files) != 1 || files[0] != want {
		t.Fatalf("Walk() files = %v, want [%s]", files, want)
	}
}

func TestLocalSourceFSAdapter_CopyDir_SymlinkToAncestor(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "js", "app.js"), "x();\n")
	symlinkOrSkip(t, src, filepath.Join(src, "js", "loop"))

	dst := filepath.Join(t.TempDir(), "tmp")
	err := adapter.CopyDir(context.Background(), m.Path(src), m.Path(dst))
	if err == nil || !strings.Contains(err.Error(), "ancestor") {
		t.Fatalf("CopyDir() error = %v, want a symlink loop error", err)
	}
}

func TestLocalSourceFSAdapter_CopyDir_DestinationExists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	src := t.TempDir()
	dst := t.TempDir()
	writeTestFile(t, filepath.Join(src, "app.js"), "x();\n")

	if err := adapter.CopyDir(context.Background(), m.Path(src), m.Path(dst)); err == nil {
		t.Fatalf("CopyDir() expected error when destination exists")
	}
}

func TestLocalSourceFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir := t.TempDir()
	src := filepath.Join(dir, "karma", "Chrome", "coverage-final.json")
	if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	writeTestFile(t, src, `{"a.js":{}}`)

	dst := filepath.Join(dir, "coverage-karma.json")
	writeTestFile(t, dst, "stale")

	if err := adapter.CopyFile(ctx, m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != `{"a.js":{}}` {
		t.Fatalf("CopyFile() wrote %q", got)
	}

	if err := adapter.CopyFile(ctx, m.Path(dir), m.Path(filepath.Join(dir, "x"))); err == nil {
		t.Fatalf("CopyFile() expected error for directory source")
	}
}

func TestLocalSourceFSAdapter_Glob(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	for _, browser := range []string{"Firefox", "Chrome"} {
		dir := filepath.Join(root, "karma", browser)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		writeTestFile(t, filepath.Join(dir, "coverage-final.json"), "{}")
	}
	writeTestFile(t, filepath.Join(root, "karma", "coverage-final.json"), "{}")

	matches, err := adapter.Glob(context.Background(), filepath.Join(root, "karma", "*", "coverage-final.json"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(root, "karma", "Chrome", "coverage-final.json")),
		m.Path(filepath.Join(root, "karma", "Firefox", "coverage-final.json")),
	}

	if len(matches) != len(want) {
		t.Fatalf("Glob() = %v, want %v", matches, want)
	}

	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("Glob()[%d] = %s, want %s", i, matches[i], want[i])
		}
	}

	none, err := adapter.Glob(context.Background(), filepath.Join(root, "protractor", "*.json"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}

	if len(none) != 0 {
		t.Fatalf("Glob() = %v, want no matches", none)
	}
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("www")
	target := m.Path(filepath.Join("www", "components", "tts", "tts.js"))

	rel, err := adapter.RelPath(context.Background(), base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("components", "tts", "tts.js") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("components", "tts", "tts.js"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
