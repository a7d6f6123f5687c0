package geoimages

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// ArtifactIndex provides fast spatial queries over emitted fixture
// images.
//
// The index stores the coordinate recovered from each image's GPS tags,
// so queries answer the question downstream test suites actually ask:
// which fixture files cover this region?
//
// Example:
//
//	idx, errs := geoimages.BuildIndexFromDir("geo_images")
//	if len(errs) > 0 {
//	    log.Printf("skipped %d unreadable files", len(errs))
//	}
//
//	covered := idx.Query(geoimages.Bounds{
//	    MinLat: 40.0, MaxLat: 40.01,
//	    MinLon: -74.0, MaxLon: -73.99,
//	})
type ArtifactIndex struct {
	rtree   *rtreego.Rtree
	entries []*ArtifactEntry
}

// ArtifactEntry is one indexed fixture image.
type ArtifactEntry struct {
	Path string  // Path to the JPEG
	Lat  float64 // Latitude recovered from GPS tags
	Lon  float64 // Longitude recovered from GPS tags
}

// Bounds implements rtreego.Spatial.
func (e *ArtifactEntry) Bounds() rtreego.Rect {
	// R-tree rects need non-zero extent; ~11 meters at the equator.
	const epsilon = 0.0001
	point := rtreego.Point{e.Lon, e.Lat}
	rect, _ := rtreego.NewRect(point, []float64{epsilon, epsilon})
	return rect
}

// NewArtifactIndex returns an empty index.
func NewArtifactIndex() *ArtifactIndex {
	return &ArtifactIndex{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// Add inserts one entry.
func (idx *ArtifactIndex) Add(e ArtifactEntry) {
	entry := &e
	idx.entries = append(idx.entries, entry)
	idx.rtree.Insert(entry)
}

// Len returns the number of indexed artifacts.
func (idx *ArtifactIndex) Len() int {
	return len(idx.entries)
}

// Query returns the artifacts whose coordinate lies within (or touches)
// the given bounds, ordered by path.
func (idx *ArtifactIndex) Query(b Bounds) []ArtifactEntry {
	point := rtreego.Point{b.MinLon, b.MinLat}

	// Degenerate query boxes still need extent for the R-tree.
	const epsilon = 0.0001
	lonLength := b.MaxLon - b.MinLon
	latLength := b.MaxLat - b.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	queryRect, err := rtreego.NewRect(point, []float64{lonLength, latLength})
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(queryRect)

	out := make([]ArtifactEntry, 0, len(spatials))
	for _, s := range spatials {
		out = append(out, *(s.(*ArtifactEntry)))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// BuildIndexFromDir indexes every fixture image found in dir.
//
// Files matching the emitter's naming scheme are read back through their
// GPS tags, which doubles as a verification pass: a file whose tags
// cannot be recovered lands in the returned error list instead of the
// index.
func BuildIndexFromDir(dir string) (*ArtifactIndex, []error) {
	matches, err := filepath.Glob(filepath.Join(dir, "image_*.jpg"))
	if err != nil {
		return nil, []error{err}
	}
	sort.Strings(matches)

	idx := NewArtifactIndex()
	var errs []error
	for _, path := range matches {
		tags, err := ReadGPSTags(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		idx.Add(ArtifactEntry{Path: path, Lat: tags.Latitude, Lon: tags.Longitude})
	}
	return idx, errs
}
