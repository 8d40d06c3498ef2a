package catalog

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Carifio24/wwt-core-catalogs/pkg/yamlio"
	"github.com/Carifio24/wwt-core-catalogs/wtml"
)

// PlaceInfo is the distilled, sparse representation of a Place used for
// catalog storage.  Fields are declared in alphabetical tag order so the YAML
// encoder emits records with sorted keys.  Optional fields are pointers (or
// empty strings) and carry omitempty: presence is decided once, at distill
// time, not per serialization.
//
// The three *_image_set_url fields are weak references: they record the URL
// of an imageset registered separately in the ImagesetDatabase, never an
// embedded copy.
type PlaceInfo struct {
	Angle                 *float64 `yaml:"angle,omitempty"`
	AngularSize           *float64 `yaml:"angular_size,omitempty"`
	Annotation            string   `yaml:"annotation,omitempty"`
	BackgroundImageSetUrl string   `yaml:"background_image_set_url,omitempty"`
	Classification        string   `yaml:"classification,omitempty"`
	Constellation         string   `yaml:"constellation,omitempty"`
	DataSetType           string   `yaml:"data_set_type"`
	DecDeg                *float64 `yaml:"dec_deg,omitempty"`
	Description           string   `yaml:"description,omitempty"`
	Distance              *float64 `yaml:"distance,omitempty"`
	DomeAlt               *float64 `yaml:"dome_alt,omitempty"`
	DomeAz                *float64 `yaml:"dome_az,omitempty"`
	ForegroundImageSetUrl string   `yaml:"foreground_image_set_url,omitempty"`
	ImageSetUrl           string   `yaml:"image_set_url,omitempty"`
	Latitude              *float64 `yaml:"latitude,omitempty"`
	Longitude             *float64 `yaml:"longitude,omitempty"`
	Magnitude             *float64 `yaml:"magnitude,omitempty"`
	MSRCommunityID        *int     `yaml:"msr_community_id,omitempty"`
	MSRComponentID        *int     `yaml:"msr_component_id,omitempty"`
	Name                  string   `yaml:"name"`
	Opacity               *float64 `yaml:"opacity,omitempty"`
	Permission            *int     `yaml:"permission,omitempty"`
	RAHr                  *float64 `yaml:"ra_hr,omitempty"`
	RotationDeg           *float64 `yaml:"rotation_deg,omitempty"`
	Thumbnail             string   `yaml:"thumbnail,omitempty"`
	ZoomLevel             *float64 `yaml:"zoom_level,omitempty"`
}

// DistillPlace reduces a full Place to its stored form.  Numeric fields are
// included only when non-zero (opacity: only when not fully opaque), strings
// only when non-empty, and nested imagesets are reduced to their URLs.
func DistillPlace(p *wtml.Place) *PlaceInfo {
	info := &PlaceInfo{
		DataSetType: string(p.DataSetType),
		Name:        p.Name,
	}

	info.Angle = optFloat(p.Angle, 0)
	info.AngularSize = optFloat(p.AngularSize, 0)
	info.Annotation = p.Annotation
	if p.BackgroundImageSet != nil {
		info.BackgroundImageSetUrl = p.BackgroundImageSet.Url
	}
	info.Classification = p.Classification
	info.Constellation = p.Constellation
	info.DecDeg = optFloat(p.DecDeg, 0)
	info.Distance = optFloat(p.Distance, 0)
	info.DomeAlt = optFloat(p.DomeAlt, 0)
	info.DomeAz = optFloat(p.DomeAz, 0)
	if p.ForegroundImageSet != nil {
		info.ForegroundImageSetUrl = p.ForegroundImageSet.Url
	}
	if p.ImageSet != nil {
		info.ImageSetUrl = p.ImageSet.Url
	}
	info.Latitude = optFloat(p.Latitude, 0)
	info.Longitude = optFloat(p.Longitude, 0)
	info.Magnitude = optFloat(p.Magnitude, 0)
	info.MSRCommunityID = optInt(p.MSRCommunityID, 0)
	info.MSRComponentID = optInt(p.MSRComponentID, 0)
	info.Opacity = optFloat(p.Opacity, 100)
	info.Permission = optInt(p.Permission, 0)
	info.RAHr = optFloat(p.RAHr, 0)
	info.RotationDeg = optFloat(p.RotationDeg, 0)
	info.Thumbnail = p.Thumbnail
	info.ZoomLevel = optFloat(p.ZoomLevel, 0)

	return info
}

func optFloat(v float64, def float64) *float64 {
	if v == def {
		return nil
	}
	return &v
}

func optInt(v int, def int) *int {
	if v == def {
		return nil
	}
	return &v
}

// PlaceDatabase is the in-memory place catalog.  Records are append-only
// within a batch: places have no identity key, so nothing is merged or
// deduplicated.
type PlaceDatabase struct {
	dir   string
	infos []*PlaceInfo
}

// NewPlaceDatabase returns an empty store rooted at dir.
func NewPlaceDatabase(dir string) *PlaceDatabase {
	pdb := &PlaceDatabase{
		dir: dir,
	}
	return pdb
}

// LoadPlaceDatabase reads every .yml shard file under dir into memory.  A
// missing directory yields an empty store.
func LoadPlaceDatabase(dir string) (*PlaceDatabase, error) {
	pdb := NewPlaceDatabase(dir)

	paths, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	for _, path := range paths {
		err := yamlio.EachDocument(path, func(dec *yaml.Decoder) error {
			info := &PlaceInfo{}
			if err := dec.Decode(info); err != nil {
				return err
			}
			pdb.infos = append(pdb.infos, info)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "loading place shard %v", path)
		}
	}
	return pdb, nil
}

// Ingest registers the place's nested imagesets with idb, so places and
// imagesets end up in one shared imageset collection, then appends the
// distilled place-info record.
func (pdb *PlaceDatabase) Ingest(p *wtml.Place, idb *ImagesetDatabase) {
	if p.ImageSet != nil {
		idb.Add(p.ImageSet)
	}
	if p.ForegroundImageSet != nil {
		idb.Add(p.ForegroundImageSet)
	}
	if p.BackgroundImageSet != nil {
		idb.Add(p.BackgroundImageSet)
	}

	pdb.infos = append(pdb.infos, DistillPlace(p))
}

// Len returns the number of place-info records held.
func (pdb *PlaceDatabase) Len() int {
	return len(pdb.infos)
}

// ShardCounts returns the number of members each shard would receive on the
// next rewrite.
func (pdb *PlaceDatabase) ShardCounts() map[string]int {
	counts := map[string]int{}
	for _, info := range pdb.infos {
		counts[PlaceKey(info)]++
	}
	return counts
}

// Rewrite recomputes shard membership for every held record and atomically
// replaces the catalog directory.
func (pdb *PlaceDatabase) Rewrite() error {
	byKey := map[string][]*PlaceInfo{}
	for _, info := range pdb.infos {
		key := PlaceKey(info)
		byKey[key] = append(byKey[key], info)
	}

	tmpdir := pdb.dir + ".new"
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
		sort.SliceStable(members, func(i int, j int) bool {
			return ComparePlaceInfos(members[i], members[j]) < 0
		})

		docs := make([]interface{}, len(members))
		for i, info := range members {
			docs[i] = info
		}
		if err := yamlio.WriteFile(filepath.Join(tmpdir, key+".yml"), docs); err != nil {
			return err
		}
		log.WithField("key", key).WithField("places", len(members)).Debug("Wrote place shard")
	}

	return ReplaceDir(pdb.dir, tmpdir)
}
