package vrt_test

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"lstmosaic/internal/mosaic"
	"lstmosaic/internal/testsupport"
	"lstmosaic/internal/vrt"
)

const prefix = "MODIS_MullenRegion"

// twoPlatformFixture writes one Terra and one Aqua GeoTIFF for the same date
// and collects them in mode both: four observations across two files.
func twoPlatformFixture(t *testing.T) (string, []mosaic.Observation) {
	t.Helper()
	base := t.TempDir()
	terraDir := filepath.Join(base, "terra")
	aquaDir := filepath.Join(base, "aqua")
	testsupport.WriteGeoTIFF(t, filepath.Join(terraDir, prefix+"_Terra_LST_20200917.tif"), testsupport.DefaultRaster())
	testsupport.WriteGeoTIFF(t, filepath.Join(aquaDir, prefix+"_Aqua_LST_20200917.tif"), testsupport.DefaultRaster())

	obs, err := mosaic.Collect([]mosaic.Source{
		{Dir: terraDir, Platform: mosaic.PlatformTerra},
		{Dir: aquaDir, Platform: mosaic.PlatformAqua},
	}, prefix, mosaic.ModeBoth)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	return base, obs
}

func TestBuildAndWriteRoundTrip(t *testing.T) {
	base, obs := twoPlatformFixture(t)
	output := filepath.Join(base, "mosaic", "temporal.vrt")
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		t.Fatal(err)
	}

	geometry, err := vrt.ReferenceGeometry(obs, true)
	if err != nil {
		t.Fatalf("ReferenceGeometry returned error: %v", err)
	}
	doc, err := vrt.Build(obs, geometry, output)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if err := doc.WriteFile(output); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var parsed vrt.Document
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("emitted container is not parseable XML: %v", err)
	}

	if len(parsed.Bands) != len(obs) {
		t.Fatalf("expected %d bands, got %d", len(obs), len(parsed.Bands))
	}
	if parsed.RasterXSize != geometry.Width || parsed.RasterYSize != geometry.Height {
		t.Fatalf("container dimensions %dx%d do not match geometry", parsed.RasterXSize, parsed.RasterYSize)
	}
	if parsed.SRS != "EPSG:4326" {
		t.Fatalf("unexpected SRS: %q", parsed.SRS)
	}

	seen := make(map[string]bool)
	for i, band := range parsed.Bands {
		if band.Band != i+1 {
			t.Fatalf("band %d has index %d", i, band.Band)
		}
		if band.DataType != geometry.DataType {
			t.Fatalf("band %d data type %q", i, band.DataType)
		}
		key := band.Source.Filename.Path + "#" + strconv.Itoa(band.Source.Band)
		if seen[key] {
			t.Fatalf("duplicate (file, band) pair %s", key)
		}
		seen[key] = true

		if band.Source.Filename.RelativeToVRT != 1 {
			t.Fatalf("band %d source not marked relative", i)
		}
		if strings.Contains(band.Source.Filename.Path, "\\") {
			t.Fatalf("band %d source path uses backslashes: %q", i, band.Source.Filename.Path)
		}
		if !strings.HasPrefix(band.Source.Filename.Path, "../") {
			t.Fatalf("band %d source path not relative to container dir: %q", i, band.Source.Filename.Path)
		}
		if band.Source.SrcRect != band.Source.DstRect {
			t.Fatalf("band %d windows differ", i)
		}
		if band.Source.SrcRect.XSize != geometry.Width || band.Source.SrcRect.YSize != geometry.Height {
			t.Fatalf("band %d window does not cover full extent", i)
		}
	}
}

func TestBuildBandMetadataCarriesInstant(t *testing.T) {
	base, obs := twoPlatformFixture(t)
	output := filepath.Join(base, "temporal.vrt")

	geometry, err := vrt.ReferenceGeometry(obs, false)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := vrt.Build(obs, geometry, output)
	if err != nil {
		t.Fatal(err)
	}

	// First band chronologically is the Aqua night pass at 01:30, still
	// filed under the 17th.
	first := doc.Bands[0]
	if first.Description != "20200917_Aqua_Night_0130" {
		t.Fatalf("unexpected first band: %s", first.Description)
	}
	want := map[string]string{
		"ACQUISITION_DATE": "2020-09-17",
		"ACQUISITION_TIME": "01:30:00",
		"START_TIME":       "2020-09-17T01:30:00",
		"END_TIME":         "2020-09-17T01:30:00",
		"PLATFORM":         "Aqua",
		"BAND_NAME":        "Night",
	}
	got := make(map[string]string)
	for _, item := range first.Metadata.Items {
		got[item.Key] = item.Value
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("metadata %s = %q, want %q", key, got[key], value)
		}
	}
}

func TestReferenceGeometryMismatchFails(t *testing.T) {
	base := t.TempDir()
	terraDir := filepath.Join(base, "terra")
	testsupport.WriteGeoTIFF(t, filepath.Join(terraDir, prefix+"_Terra_LST_20200917.tif"), testsupport.DefaultRaster())
	skewed := testsupport.DefaultRaster()
	skewed.Width = 50
	testsupport.WriteGeoTIFF(t, filepath.Join(terraDir, prefix+"_Terra_LST_20200918.tif"), skewed)

	obs, err := mosaic.Collect([]mosaic.Source{
		{Dir: terraDir, Platform: mosaic.PlatformTerra},
		{Dir: t.TempDir(), Platform: mosaic.PlatformAqua},
	}, prefix, mosaic.ModeBoth)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := vrt.ReferenceGeometry(obs, true); err == nil {
		t.Fatal("expected geometry mismatch error")
	} else if !strings.Contains(err.Error(), "geometry mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}

	// Legacy behavior: only the first openable file is consulted.
	if _, err := vrt.ReferenceGeometry(obs, false); err != nil {
		t.Fatalf("unverified reference should succeed: %v", err)
	}
}

func TestReferenceGeometryNoReadableSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, prefix+"_Terra_LST_20200917.tif")
	if err := os.WriteFile(path, []byte("not a tiff"), 0o644); err != nil {
		t.Fatal(err)
	}
	obs, err := mosaic.Collect([]mosaic.Source{
		{Dir: dir, Platform: mosaic.PlatformTerra},
		{Dir: t.TempDir(), Platform: mosaic.PlatformAqua},
	}, prefix, mosaic.ModeBoth)
	if err != nil {
		t.Fatal(err)
	}

	_, err = vrt.ReferenceGeometry(obs, false)
	if err == nil {
		t.Fatal("expected no-readable-sample error")
	}
	if !strings.Contains(err.Error(), "no readable sample") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatGeoTransform(t *testing.T) {
	got := vrt.FormatGeoTransform([6]float64{-106.48, 0.01, 0, 41.28, 0, -0.01})
	want := "-106.48, 0.01, 0, 41.28, 0, -0.01"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
