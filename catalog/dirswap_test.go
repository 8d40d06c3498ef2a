package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gigawatt.io/testlib"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReplaceDirSwapsContents(t *testing.T) {
	scratch := filepath.Join(os.TempDir(), testlib.CurrentRunningTest())
	os.RemoveAll(scratch)
	defer os.RemoveAll(scratch)

	target := filepath.Join(scratch, "catalog")
	tmpdir := target + ".new"
	writeFile(t, filepath.Join(target, "stale.xml"), "stale")
	writeFile(t, filepath.Join(tmpdir, "fresh.xml"), "fresh")

	if err := ReplaceDir(target, tmpdir); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(target, "fresh.xml")); err != nil {
		t.Errorf("Expected fresh.xml in target but stat failed: %s", err)
	}
	if _, err := os.Stat(filepath.Join(target, "stale.xml")); !os.IsNotExist(err) {
		t.Errorf("Expected stale.xml to be gone but stat err=%v", err)
	}
	if _, err := os.Stat(target + ".old"); !os.IsNotExist(err) {
		t.Errorf("Expected move-aside directory to be removed but stat err=%v", err)
	}
}

func TestReplaceDirMissingTarget(t *testing.T) {
	scratch := filepath.Join(os.TempDir(), testlib.CurrentRunningTest())
	os.RemoveAll(scratch)
	defer os.RemoveAll(scratch)

	target := filepath.Join(scratch, "catalog")
	tmpdir := target + ".new"
	writeFile(t, filepath.Join(tmpdir, "fresh.xml"), "fresh")

	if err := ReplaceDir(target, tmpdir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(target, "fresh.xml")); err != nil {
		t.Errorf("Expected fresh.xml in target but stat failed: %s", err)
	}
}

func TestReplaceDirRestoresOnFailure(t *testing.T) {
	scratch := filepath.Join(os.TempDir(), testlib.CurrentRunningTest())
	os.RemoveAll(scratch)
	defer os.RemoveAll(scratch)

	target := filepath.Join(scratch, "catalog")
	writeFile(t, filepath.Join(target, "precious.xml"), "precious")

	// The temp directory never existed, so the second rename must fail.
	err := ReplaceDir(target, filepath.Join(scratch, "no-such-dir"))
	if err == nil {
		t.Fatal("Expected an error when the temp directory is missing")
	}
	if !errors.Is(err, ErrDirectorySwap) {
		t.Errorf("Expected ErrDirectorySwap but actual=%v", err)
	}

	data, readErr := os.ReadFile(filepath.Join(target, "precious.xml"))
	if readErr != nil {
		t.Fatalf("Expected target to be restored but read failed: %s", readErr)
	}
	if expected, actual := "precious", string(data); actual != expected {
		t.Errorf("Expected restored content=%q but actual=%q", expected, actual)
	}
}
