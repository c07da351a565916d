package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/nborank/internal/utils"
)

func TestSafeWriteFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "nested", "out.csv")
	if err := utils.SafeWriteFile(p, []byte("a,b\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "a,b\n" {
		t.Fatalf("unexpected content: %q", b)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestUniquePathAddsSuffix(t *testing.T) {
	taken := map[string]struct{}{}
	first := utils.UniquePath("out/metrics.ranked.csv", taken)
	second := utils.UniquePath("out/metrics.ranked.csv", taken)
	third := utils.UniquePath("out/metrics.ranked.csv", taken)
	if first != "out/metrics.ranked.csv" {
		t.Fatalf("first = %q", first)
	}
	if second != "out/metrics.ranked__2.csv" || third != "out/metrics.ranked__3.csv" {
		t.Fatalf("suffixes = %q, %q", second, third)
	}
}
