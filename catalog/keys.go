package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/Carifio24/wwt-core-catalogs/wtml"
)

// ImagesetKey computes the shard key for an imageset: the data-set type, the
// reference frame when it is set to something other than the implicit "Sky",
// and the bandpass when set, joined with underscores and lowercased.
func ImagesetKey(is *wtml.ImageSet) string {
	k := []string{string(is.DataSetType)}
	if is.ReferenceFrame != "" && is.ReferenceFrame != "Sky" {
		k = append(k, is.ReferenceFrame)
	}
	if is.BandPass != "" {
		k = append(k, string(is.BandPass))
	}
	return strings.ToLower(strings.Join(k, "_"))
}

// PlaceKey computes the shard key for a place-info record: the data-set type,
// a two-digit right-ascension hour bin when RA is present, and a three-digit
// ten-degree longitude bin when longitude is present.  Longitude bins use
// floor semantics, so -5 lands in lon-10, not lon000.
func PlaceKey(info *PlaceInfo) string {
	k := []string{info.DataSetType}

	if info.RAHr != nil {
		ra := int(math.Floor(*info.RAHr)) % 24
		if ra < 0 {
			ra += 24
		}
		k = append(k, fmt.Sprintf("ra%02d", ra))
	}

	if info.Longitude != nil {
		lon := floorDiv(int(math.Floor(*info.Longitude)), 10) * 10
		k = append(k, fmt.Sprintf("lon%03d", lon))
	}

	return strings.ToLower(strings.Join(k, "_"))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a int, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// sortPart is one element of a place-info ordering key.
type sortPart struct {
	str   string
	num   float64
	isNum bool
}

func strPart(s string) sortPart {
	return sortPart{str: s}
}

func numPart(f float64) sortPart {
	return sortPart{num: f, isNum: true}
}

// ComparePlaceInfos orders two place-info records within a shard, returning
// a negative, zero, or positive result.
func ComparePlaceInfos(a *PlaceInfo, b *PlaceInfo) int {
	return compareSortKeys(a.sortKey(), b.sortKey())
}

// sortKey builds the intra-shard ordering key for a place-info record.
// Precedence: the first present imageset URL (foreground, then study image,
// then background), the (dec, ra) pair when dec is present, the (lat, lon)
// pair when latitude is present, and finally the always-present name.
func (info *PlaceInfo) sortKey() []sortPart {
	var k []sortPart

	switch {
	case info.ForegroundImageSetUrl != "":
		k = append(k, strPart(info.ForegroundImageSetUrl))
	case info.ImageSetUrl != "":
		k = append(k, strPart(info.ImageSetUrl))
	case info.BackgroundImageSetUrl != "":
		k = append(k, strPart(info.BackgroundImageSetUrl))
	}

	if info.DecDeg != nil {
		k = append(k, numPart(*info.DecDeg), numPart(derefFloat(info.RAHr)))
	}
	if info.Latitude != nil {
		k = append(k, numPart(*info.Latitude), numPart(derefFloat(info.Longitude)))
	}

	k = append(k, strPart(info.Name))
	return k
}

// compareSortKeys orders keys element-wise.  Differing kinds at the same
// position (possible when a shard mixes records with and without coordinate
// pairs) order strings before numbers; a key that is a strict prefix of
// another orders first.
func compareSortKeys(a []sortPart, b []sortPart) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		pa, pb := a[i], b[i]
		if pa.isNum != pb.isNum {
			if !pa.isNum {
				return -1
			}
			return 1
		}
		if pa.isNum {
			if pa.num < pb.num {
				return -1
			}
			if pa.num > pb.num {
				return 1
			}
			continue
		}
		if c := strings.Compare(pa.str, pb.str); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
