package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// RasterSpec describes the synthetic GeoTIFF fixtures tests write in place of
// real MODIS exports. Fixtures carry a valid header and tag table but no
// pixel data; the probe never reads past the tags.
type RasterSpec struct {
	Width   uint16
	Height  uint16
	Pixel   float64 // square pixel size in degrees
	OriginX float64 // top-left X
	OriginY float64 // top-left Y
}

// DefaultRaster matches the thermal export grid used across the tests.
func DefaultRaster() RasterSpec {
	return RasterSpec{Width: 40, Height: 33, Pixel: 0.01, OriginX: -106.48, OriginY: 41.28}
}

const (
	tiffTypeShort  = 3
	tiffTypeDouble = 12
)

type ifdEntry struct {
	tag      uint16
	typ      uint16
	count    uint32
	value    uint32 // inline value or external offset
	external []byte
}

// WriteGeoTIFF writes a minimal little-endian GeoTIFF (dual-band Float32,
// EPSG:4326) with the given geometry. Returns the file path.
func WriteGeoTIFF(t testing.TB, path string, spec RasterSpec) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	le := binary.LittleEndian

	shorts := func(values ...uint16) []byte {
		buf := make([]byte, 2*len(values))
		for i, v := range values {
			le.PutUint16(buf[2*i:], v)
		}
		return buf
	}
	doubles := func(values ...float64) []byte {
		var buf bytes.Buffer
		for _, v := range values {
			if err := binary.Write(&buf, le, v); err != nil {
				t.Fatalf("encode double: %v", err)
			}
		}
		return buf.Bytes()
	}
	inlineShort := func(v uint16) uint32 { return uint32(v) }

	entries := []ifdEntry{
		{tag: 256, typ: tiffTypeShort, count: 1, value: inlineShort(spec.Width)},
		{tag: 257, typ: tiffTypeShort, count: 1, value: inlineShort(spec.Height)},
		{tag: 258, typ: tiffTypeShort, count: 2, value: uint32(32) | uint32(32)<<16},
		{tag: 277, typ: tiffTypeShort, count: 1, value: inlineShort(2)},
		{tag: 339, typ: tiffTypeShort, count: 2, value: uint32(3) | uint32(3)<<16},
		{tag: 33550, typ: tiffTypeDouble, count: 3, external: doubles(spec.Pixel, spec.Pixel, 0)},
		{tag: 33922, typ: tiffTypeDouble, count: 6, external: doubles(0, 0, 0, spec.OriginX, spec.OriginY, 0)},
		// GeoKey directory header + GeographicTypeGeoKey = 4326.
		{tag: 34735, typ: tiffTypeShort, count: 8, external: shorts(1, 1, 0, 1, 2048, 0, 1, 4326)},
	}

	headerSize := uint32(8)
	ifdSize := uint32(2 + 12*len(entries) + 4)
	dataOffset := headerSize + ifdSize
	for i := range entries {
		if entries[i].external != nil {
			entries[i].value = dataOffset
			dataOffset += uint32(len(entries[i].external))
		}
	}

	var out bytes.Buffer
	out.WriteString("II")
	binary.Write(&out, le, uint16(42))         //nolint:errcheck
	binary.Write(&out, le, uint32(headerSize)) //nolint:errcheck

	binary.Write(&out, le, uint16(len(entries))) //nolint:errcheck
	for _, e := range entries {
		binary.Write(&out, le, e.tag)   //nolint:errcheck
		binary.Write(&out, le, e.typ)   //nolint:errcheck
		binary.Write(&out, le, e.count) //nolint:errcheck
		binary.Write(&out, le, e.value) //nolint:errcheck
	}
	binary.Write(&out, le, uint32(0)) //nolint:errcheck

	for _, e := range entries {
		if e.external != nil {
			out.Write(e.external)
		}
	}

	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
