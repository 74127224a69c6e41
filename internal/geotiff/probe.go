package geotiff

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/google/tiff"
)

// TIFF tags the probe reads. 33550/33922/34264 and the Geo* tags are the
// GeoTIFF extension tags.
const (
	tagImageWidth          = 256
	tagImageLength         = 257
	tagBitsPerSample       = 258
	tagSampleFormat        = 339
	tagModelPixelScale     = 33550
	tagModelTiepoint       = 33922
	tagModelTransformation = 34264
	tagGeoKeyDirectory     = 34735
	tagGeoASCIIParams      = 34737
)

// GeoKey IDs holding the coordinate-reference EPSG code.
const (
	geoKeyGeographicType = 2048
	geoKeyProjectedCS    = 3072
)

const (
	sampleFormatUnsigned = 1
	sampleFormatSigned   = 2
	sampleFormatFloat    = 3
)

// Geometry is the shared raster shape every band of the virtual mosaic
// inherits: pixel dimensions, the six-parameter affine geotransform in GDAL
// order, the coordinate-reference text, and the GDAL sample-type name.
type Geometry struct {
	Width     int
	Height    int
	Transform [6]float64
	SRS       string
	DataType  string
}

// Equal reports whether two geometries describe identical rasters.
func (g Geometry) Equal(other Geometry) bool {
	return g.Width == other.Width &&
		g.Height == other.Height &&
		g.Transform == other.Transform &&
		g.DataType == other.DataType
}

// Probe reads the raster geometry from a GeoTIFF's tags without touching
// pixel data. Files lacking georeferencing tags are an error: every input to
// this workflow is a georeferenced export.
func Probe(path string) (Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Geometry{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := tiff.Parse(f, nil, nil)
	if err != nil {
		return Geometry{}, fmt.Errorf("parse %s: %w", path, err)
	}
	ifds := parsed.IFDs()
	if len(ifds) == 0 {
		return Geometry{}, fmt.Errorf("parse %s: no image directory", path)
	}
	ifd := ifds[0]

	width, err := uintTag(ifd, tagImageWidth)
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}
	height, err := uintTag(ifd, tagImageLength)
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}

	transform, err := geotransform(ifd)
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}

	return Geometry{
		Width:     int(width),
		Height:    int(height),
		Transform: transform,
		SRS:       referenceSystem(ifd),
		DataType:  dataType(ifd),
	}, nil
}

func geotransform(ifd tiff.IFD) ([6]float64, error) {
	if ifd.HasField(tagModelTransformation) {
		m := doublesTag(ifd, tagModelTransformation)
		if len(m) >= 8 {
			return [6]float64{m[3], m[0], m[1], m[7], m[4], m[5]}, nil
		}
	}
	if ifd.HasField(tagModelPixelScale) && ifd.HasField(tagModelTiepoint) {
		scale := doublesTag(ifd, tagModelPixelScale)
		tie := doublesTag(ifd, tagModelTiepoint)
		if len(scale) >= 2 && len(tie) >= 6 {
			// Tiepoint maps raster (I,J) to model (X,Y); shift to pixel (0,0).
			i, j := tie[0], tie[1]
			x, y := tie[3], tie[4]
			sx, sy := scale[0], scale[1]
			return [6]float64{x - i*sx, sx, 0, y + j*sy, 0, -sy}, nil
		}
	}
	return [6]float64{}, fmt.Errorf("no georeferencing tags (ModelTransformation or PixelScale+Tiepoint)")
}

func referenceSystem(ifd tiff.IFD) string {
	if ifd.HasField(tagGeoKeyDirectory) {
		keys := shortsTag(ifd, tagGeoKeyDirectory)
		// Entries are quadruples after the 4-short header:
		// keyID, tagLocation, count, value.
		var geographic, projected uint16
		for i := 4; i+3 < len(keys); i += 4 {
			switch keys[i] {
			case geoKeyGeographicType:
				if keys[i+1] == 0 {
					geographic = keys[i+3]
				}
			case geoKeyProjectedCS:
				if keys[i+1] == 0 {
					projected = keys[i+3]
				}
			}
		}
		if projected != 0 && projected != 32767 {
			return fmt.Sprintf("EPSG:%d", projected)
		}
		if geographic != 0 && geographic != 32767 {
			return fmt.Sprintf("EPSG:%d", geographic)
		}
	}
	if ifd.HasField(tagGeoASCIIParams) {
		raw := ifd.GetField(tagGeoASCIIParams).Value().Bytes()
		return strings.Trim(string(raw), "|\x00 ")
	}
	return ""
}

// dataType maps SampleFormat and BitsPerSample onto the GDAL type name.
// Unknown combinations fall back to Float32, matching the exported products.
func dataType(ifd tiff.IFD) string {
	format := uint16(sampleFormatUnsigned)
	if ifd.HasField(tagSampleFormat) {
		if v := shortsTag(ifd, tagSampleFormat); len(v) > 0 {
			format = v[0]
		}
	}
	bits := uint16(32)
	if ifd.HasField(tagBitsPerSample) {
		if v := shortsTag(ifd, tagBitsPerSample); len(v) > 0 {
			bits = v[0]
		}
	}

	switch format {
	case sampleFormatFloat:
		if bits == 64 {
			return "Float64"
		}
		return "Float32"
	case sampleFormatSigned:
		switch bits {
		case 16:
			return "Int16"
		case 32:
			return "Int32"
		}
	case sampleFormatUnsigned:
		switch bits {
		case 8:
			return "Byte"
		case 16:
			return "UInt16"
		case 32:
			return "UInt32"
		}
	}
	return "Float32"
}

func uintTag(ifd tiff.IFD, id uint16) (uint64, error) {
	if !ifd.HasField(id) {
		return 0, fmt.Errorf("missing required tag %d", id)
	}
	value := ifd.GetField(id).Value()
	raw := value.Bytes()
	switch len(raw) {
	case 1:
		return uint64(raw[0]), nil
	case 2:
		return uint64(value.Order().Uint16(raw)), nil
	case 4:
		return uint64(value.Order().Uint32(raw)), nil
	case 8:
		return value.Order().Uint64(raw), nil
	}
	return 0, fmt.Errorf("tag %d: unexpected value size %d", id, len(raw))
}

func shortsTag(ifd tiff.IFD, id uint16) []uint16 {
	value := ifd.GetField(id).Value()
	raw := value.Bytes()
	out := make([]uint16, 0, len(raw)/2)
	for i := 0; i+2 <= len(raw); i += 2 {
		out = append(out, value.Order().Uint16(raw[i:i+2]))
	}
	return out
}

func doublesTag(ifd tiff.IFD, id uint16) []float64 {
	value := ifd.GetField(id).Value()
	raw := value.Bytes()
	out := make([]float64, 0, len(raw)/8)
	for i := 0; i+8 <= len(raw); i += 8 {
		out = append(out, math.Float64frombits(value.Order().Uint64(raw[i:i+8])))
	}
	return out
}
