package catalog

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Carifio24/wwt-core-catalogs/wtml"
	"github.com/Carifio24/wwt-core-catalogs/xmlfmt"
)

// ImagesetDatabase is the in-memory imageset catalog: every imageset from
// every shard file under its directory, keyed by URL.  It owns its records;
// callers hand imagesets over via Add and never mutate them afterward.
type ImagesetDatabase struct {
	dir   string
	byURL map[string]*wtml.ImageSet
}

// NewImagesetDatabase returns an empty store rooted at dir.
func NewImagesetDatabase(dir string) *ImagesetDatabase {
	idb := &ImagesetDatabase{
		dir:   dir,
		byURL: map[string]*wtml.ImageSet{},
	}
	return idb
}

// LoadImagesetDatabase reads every .xml shard file under dir into memory.  A
// missing directory yields an empty store.
func LoadImagesetDatabase(dir string) (*ImagesetDatabase, error) {
	idb := NewImagesetDatabase(dir)

	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	for _, path := range paths {
		folder, err := wtml.ParseFolderFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "loading imageset shard %v", path)
		}
		for _, is := range folder.ImageSets {
			idb.Add(is)
		}
	}
	return idb, nil
}

// Add inserts an imageset keyed by URL.  The first record seen for a given
// URL wins; later duplicates are dropped with a warning, never an error.
func (idb *ImagesetDatabase) Add(is *wtml.ImageSet) {
	if _, ok := idb.byURL[is.Url]; ok {
		log.Warnf("dropping duplicated imageset `%v`", is.Url)
		return
	}
	idb.byURL[is.Url] = is
}

// Get returns the imageset registered for url, if any.
func (idb *ImagesetDatabase) Get(url string) (*wtml.ImageSet, bool) {
	is, ok := idb.byURL[url]
	return is, ok
}

// Len returns the number of distinct imagesets held.
func (idb *ImagesetDatabase) Len() int {
	return len(idb.byURL)
}

// ShardCounts returns the number of members each shard would receive on the
// next rewrite.
func (idb *ImagesetDatabase) ShardCounts() map[string]int {
	counts := map[string]int{}
	for _, is := range idb.byURL {
		counts[ImagesetKey(is)]++
	}
	return counts
}

// Rewrite recomputes shard membership for every held imageset and atomically
// replaces the catalog directory.  Shard membership is a derived view: it is
// thrown away and rebuilt from the in-memory collection on every call, so two
// consecutive rewrites produce byte-identical files.
func (idb *ImagesetDatabase) Rewrite() error {
	byKey := map[string][]*wtml.ImageSet{}
	for _, is := range idb.byURL {
		key := ImagesetKey(is)
		byKey[key] = append(byKey[key], is)
	}

	tmpdir := idb.dir + ".new"
	if err := os.RemoveAll(tmpdir); err != nil {
		return errors.Wrapf(err, "clearing stale %v", tmpdir)
	}
	if err := os.MkdirAll(tmpdir, 0755); err != nil {
		return err
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		members := byKey[key]
		sort.Slice(members, func(i int, j int) bool {
			return members[i].Url < members[j].Url
		})

		folder := wtml.NewFolder(key)
		folder.ImageSets = members

		if err := writeShardXML(filepath.Join(tmpdir, key+".xml"), folder); err != nil {
			return err
		}
		log.WithField("key", key).WithField("imagesets", len(members)).Debug("Wrote imageset shard")
	}

	return ReplaceDir(idb.dir, tmpdir)
}

func writeShardXML(path string, folder *wtml.Folder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := xmlfmt.Prettify(folder.XMLElement(), f); err != nil {
		f.Close()
		return errors.Wrapf(err, "serializing %v", path)
	}
	return f.Close()
}
