package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"gigawatt.io/testlib"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/Carifio24/wwt-core-catalogs/wtml"
)

func newTestImageSet(url string) *wtml.ImageSet {
	is := wtml.NewImageSet()
	is.Name = "Test layer"
	is.Url = url
	is.ThumbnailUrl = "http://example.org/thumb.jpg"
	return is
}

func TestImagesetDatabaseDedup(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	idb := NewImagesetDatabase("unused")

	first := newTestImageSet("http://example.org/{0}/{1}")
	first.Name = "First"
	second := newTestImageSet("http://example.org/{0}/{1}")
	second.Name = "Second"

	idb.Add(first)
	idb.Add(second)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a warning for the duplicated URL")
	}
	if expected, actual := log.WarnLevel, entry.Level; actual != expected {
		t.Errorf("Expected level=%v but actual=%v", expected, actual)
	}
	if expected, actual := "dropping duplicated imageset `http://example.org/{0}/{1}`", entry.Message; actual != expected {
		t.Errorf("Expected message=%q but actual=%q", expected, actual)
	}

	if expected, actual := 1, idb.Len(); actual != expected {
		t.Fatalf("Expected len=%v but actual=%v", expected, actual)
	}
	counts := idb.ShardCounts()
	if expected, actual := 1, counts[ImagesetKey(first)]; actual != expected {
		t.Errorf("Expected shard count=%v but actual=%v", expected, actual)
	}

	kept, ok := idb.Get("http://example.org/{0}/{1}")
	if !ok {
		t.Fatal("Expected the imageset to be present")
	}
	if expected, actual := "First", kept.Name; actual != expected {
		t.Errorf("Expected first-seen record to win, name=%v but actual=%v", expected, actual)
	}
}

func TestImagesetDatabaseRewriteIdempotent(t *testing.T) {
	scratch := filepath.Join(os.TempDir(), testlib.CurrentRunningTest())
	os.RemoveAll(scratch)
	defer os.RemoveAll(scratch)

	dir := filepath.Join(scratch, "imagesets")
	idb := NewImagesetDatabase(dir)

	a := newTestImageSet("http://example.org/a/{0}")
	b := newTestImageSet("http://example.org/b/{0}")
	b.BandPass = wtml.Radio
	c := newTestImageSet("http://example.org/c/{0}")
	idb.Add(a)
	idb.Add(b)
	idb.Add(c)

	if err := idb.Rewrite(); err != nil {
		t.Fatal(err)
	}
	first := readTree(t, dir)

	expectedFiles := []string{"sky_radio.xml", "sky_visible.xml"}
	if actual := sortedKeys(first); !reflect.DeepEqual(actual, expectedFiles) {
		t.Fatalf("Expected shard files=%v but actual=%v", expectedFiles, actual)
	}

	if err := idb.Rewrite(); err != nil {
		t.Fatal(err)
	}
	second := readTree(t, dir)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected byte-identical shard files across rewrites but they differ")
	}

	// A reload sees the same collection the rewrite serialized.
	reloaded, err := LoadImagesetDatabase(dir)
	if err != nil {
		t.Fatal(err)
	}
	if expected, actual := idb.Len(), reloaded.Len(); actual != expected {
		t.Errorf("Expected reloaded len=%v but actual=%v", expected, actual)
	}
	if expected, actual := idb.ShardCounts(), reloaded.ShardCounts(); !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected reloaded shard counts=%v but actual=%v", expected, actual)
	}
}

func TestImagesetDatabaseShardMembersSortedByURL(t *testing.T) {
	scratch := filepath.Join(os.TempDir(), testlib.CurrentRunningTest())
	os.RemoveAll(scratch)
	defer os.RemoveAll(scratch)

	dir := filepath.Join(scratch, "imagesets")
	idb := NewImagesetDatabase(dir)
	idb.Add(newTestImageSet("http://example.org/z"))
	idb.Add(newTestImageSet("http://example.org/a"))

	if err := idb.Rewrite(); err != nil {
		t.Fatal(err)
	}

	folder, err := wtml.ParseFolderFile(filepath.Join(dir, "sky_visible.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if expected, actual := 2, len(folder.ImageSets); actual != expected {
		t.Fatalf("Expected imageset count=%v but actual=%v", expected, actual)
	}
	if expected, actual := "http://example.org/a", folder.ImageSets[0].Url; actual != expected {
		t.Errorf("Expected first url=%v but actual=%v", expected, actual)
	}
}

func readTree(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	tree := map[string]string{}
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatal(err)
		}
		tree[entry.Name()] = string(data)
	}
	return tree
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
