package geoimages

import (
	"fmt"
	"os"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"

	"github.com/ijiayi/generate-geo-images/internal/grid"
)

// writeGPSTags embeds GPS latitude/longitude tags into the JPEG at path
// and rewrites the file in place.
//
// The coordinate is stored the way consumers expect it: DMS triples as
// unsigned rationals plus single-letter hemisphere references. Because
// the DMS codec truncates to whole seconds, every rational has a
// denominator of 1 and the stored coordinate recovers the original to
// within one arc-second.
func writeGPSTags(path string, lat, lon float64) error {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse jpeg: %w", err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		// Freshly encoded files carry no EXIF block; start one.
		im, errMap := exifcommon.NewIfdMappingWithStandard()
		if errMap != nil {
			return fmt.Errorf("ifd mapping: %w", errMap)
		}
		ti := exif.NewTagIndex()
		rootIb = exif.NewIfdBuilder(im, ti,
			exifcommon.IfdStandardIfdIdentity,
			exifcommon.EncodeDefaultByteOrder)
	}

	gpsIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD/GPSInfo")
	if err != nil {
		return fmt.Errorf("gps ifd: %w", err)
	}

	if err := gpsIb.SetStandardWithName("GPSVersionID", []byte{2, 3, 0, 0}); err != nil {
		return fmt.Errorf("set GPSVersionID: %w", err)
	}
	if err := gpsIb.SetStandardWithName("GPSLatitudeRef", grid.LatRef(lat)); err != nil {
		return fmt.Errorf("set GPSLatitudeRef: %w", err)
	}
	if err := gpsIb.SetStandardWithName("GPSLatitude", dmsRationals(grid.ToDMS(lat))); err != nil {
		return fmt.Errorf("set GPSLatitude: %w", err)
	}
	if err := gpsIb.SetStandardWithName("GPSLongitudeRef", grid.LonRef(lon)); err != nil {
		return fmt.Errorf("set GPSLongitudeRef: %w", err)
	}
	if err := gpsIb.SetStandardWithName("GPSLongitude", dmsRationals(grid.ToDMS(lon))); err != nil {
		return fmt.Errorf("set GPSLongitude: %w", err)
	}

	if err := sl.SetExif(rootIb); err != nil {
		return fmt.Errorf("set exif: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := sl.Write(f); err != nil {
		return fmt.Errorf("write jpeg: %w", err)
	}
	return nil
}

// dmsRationals converts a DMS triple to the EXIF RATIONAL encoding.
func dmsRationals(d grid.DMS) []exifcommon.Rational {
	return []exifcommon.Rational{
		{Numerator: uint32(d.Degrees), Denominator: 1},
		{Numerator: uint32(d.Minutes), Denominator: 1},
		{Numerator: uint32(d.Seconds), Denominator: 1},
	}
}

// GPSTags is the GPS block recovered from an emitted image.
type GPSTags struct {
	// Latitude and Longitude are signed decimal degrees reassembled from
	// the stored DMS triples and hemisphere references.
	Latitude  float64
	Longitude float64

	// LatitudeRef is "N" or "S"; LongitudeRef is "E" or "W".
	LatitudeRef  string
	LongitudeRef string
}

// ReadGPSTags recovers the coordinate embedded in the GPS IFD of the
// image at path. Any standard EXIF reader sees the same values; this is
// the machine-recoverability check fixtures exist for.
func ReadGPSTags(path string) (*GPSTags, error) {
	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return nil, fmt.Errorf("extract exif: %w", err)
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("ifd mapping: %w", err)
	}
	ti := exif.NewTagIndex()

	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return nil, fmt.Errorf("collect exif: %w", err)
	}

	gpsIfd, err := index.RootIfd.ChildWithIfdPath(exifcommon.IfdGpsInfoStandardIfdIdentity)
	if err != nil {
		return nil, fmt.Errorf("gps ifd: %w", err)
	}

	gi, err := gpsIfd.GpsInfo()
	if err != nil {
		return nil, fmt.Errorf("gps info: %w", err)
	}

	return &GPSTags{
		Latitude:     gi.Latitude.Decimal(),
		Longitude:    gi.Longitude.Decimal(),
		LatitudeRef:  string(rune(gi.Latitude.Orientation)),
		LongitudeRef: string(rune(gi.Longitude.Orientation)),
	}, nil
}
