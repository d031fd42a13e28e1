package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testdataDir returns the absolute path to the testdata/site directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	// Navigate from internal/walker to project root.
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	walkerDir := filepath.Dir(filename)
	root := filepath.Join(walkerDir, "..", "..", "testdata", "site")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_BasicTraversal(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"_static/custom.html",
		"guide/migration.md",
		"reference/services/s3.html",
		"reference/services/s3/client/delete_bucket.html",
		"reference/services/s3/client/exceptions/NoSuchBucket.html",
	}
	got := relPaths(files)
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("FileInfo.Path %q is not absolute", f.Path)
		}
		if f.Size <= 0 {
			t.Errorf("FileInfo.Size for %s is %d, expected > 0", f.RelPath, f.Size)
		}
		wantKind := KindHTML
		if strings.HasSuffix(f.RelPath, ".md") {
			wantKind = KindMarkdown
		}
		if f.Kind != wantKind {
			t.Errorf("FileInfo.Kind for %s = %q, want %q", f.RelPath, f.Kind, wantKind)
		}
	}
}

func TestWalk_IncludeFilter(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir: dir,
		Include: []string{"*.md"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 || files[0].RelPath != "guide/migration.md" {
		t.Errorf("include *.md = %v", relPaths(files))
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir: dir,
		Exclude: []string{"_static/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if strings.HasPrefix(f.RelPath, "_static/") {
			t.Errorf("exclude filter _static/** did not exclude: %s", f.RelPath)
		}
	}
	if len(files) != 4 {
		t.Errorf("expected 4 files, got %v", relPaths(files))
	}
}

func TestWalk_DoubleStarInclude(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir: dir,
		Include: []string{"reference/services/**/*.html"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 3 {
		t.Errorf("expected 3 service pages, got %v", relPaths(files))
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	tmpDir := t.TempDir()

	os.WriteFile(filepath.Join(tmpDir, "small.html"), []byte("<p>small</p>"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "big.html"), []byte(strings.Repeat("A", 200)), 0644)

	files, err := Walk(Config{
		RootDir:     tmpDir,
		MaxFileSize: 100, // 100 bytes
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if f.RelPath == "big.html" {
			t.Error("big.html should have been skipped (exceeds MaxFileSize)")
		}
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file, got %v", relPaths(files))
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{"node_modules", ".git", ".doctrees"} {
		dirPath := filepath.Join(tmpDir, dir)
		os.MkdirAll(dirPath, 0755)
		os.WriteFile(filepath.Join(dirPath, "index.html"), []byte("content"), 0644)
	}
	os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte("<p>root</p>"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("not a page"), 0644)

	files, err := Walk(Config{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d: %v", len(files), relPaths(files))
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(Config{RootDir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Error("expected error for missing root")
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"s3.html", KindHTML},
		{"INDEX.HTM", KindHTML},
		{"guide.md", KindMarkdown},
		{"notes.markdown", KindMarkdown},
		{"custom.js", KindUnknown},
		{"noextension", KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			if got := DetectKind(tc.filename); got != tc.want {
				t.Errorf("DetectKind(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestMatchesExclude(t *testing.T) {
	patterns := []string{"_static/**", "genindex.html"}
	tests := []struct {
		path string
		want bool
	}{
		{"_static/js/custom.html", true},
		{"genindex.html", true},
		{"reference/genindex.html", true},
		{"reference/services/s3.html", false},
	}
	for _, tt := range tests {
		if got := MatchesExclude(tt.path, patterns); got != tt.want {
			t.Errorf("MatchesExclude(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if MatchesExclude("anything.html", nil) {
		t.Error("empty patterns should exclude nothing")
	}
}
