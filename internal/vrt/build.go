package vrt

import (
	"fmt"
	"path/filepath"

	"lstmosaic/internal/geotiff"
	"lstmosaic/internal/mosaic"
)

// ReferenceGeometry determines the raster geometry shared by every band of
// the mosaic. The first observation whose file opens supplies the reference;
// when verify is true every remaining file is probed as well and any
// mismatch is an error, so the bands of the output cannot silently
// misalign. With verify false only the reference file is opened, matching
// the legacy workflow.
func ReferenceGeometry(observations []mosaic.Observation, verify bool) (geotiff.Geometry, error) {
	var (
		reference geotiff.Geometry
		refFile   string
		lastErr   error
	)

	for _, file := range uniqueFiles(observations) {
		geom, err := geotiff.Probe(file)
		if err != nil {
			if verify && refFile != "" {
				return geotiff.Geometry{}, err
			}
			lastErr = err
			continue
		}
		if refFile == "" {
			reference = geom
			refFile = file
			if !verify {
				return reference, nil
			}
			continue
		}
		if !geom.Equal(reference) {
			return geotiff.Geometry{}, fmt.Errorf(
				"geometry mismatch: %s is %dx%d %s, reference %s is %dx%d %s",
				file, geom.Width, geom.Height, geom.DataType,
				refFile, reference.Width, reference.Height, reference.DataType)
		}
	}

	if refFile == "" {
		if lastErr != nil {
			return geotiff.Geometry{}, fmt.Errorf("no readable sample file: %w", lastErr)
		}
		return geotiff.Geometry{}, fmt.Errorf("no readable sample file")
	}
	return reference, nil
}

// Build assembles the container for an ordered observation sequence. Source
// paths are encoded relative to the output location with forward slashes, so
// the container stays portable next to its data.
func Build(observations []mosaic.Observation, geometry geotiff.Geometry, outputPath string) (*Document, error) {
	doc := &Document{
		RasterXSize:  geometry.Width,
		RasterYSize:  geometry.Height,
		SRS:          geometry.SRS,
		GeoTransform: FormatGeoTransform(geometry.Transform),
	}

	outputDir := filepath.Dir(outputPath)
	fullExtent := Rect{XOff: 0, YOff: 0, XSize: geometry.Width, YSize: geometry.Height}

	for i, obs := range observations {
		relative, err := filepath.Rel(outputDir, obs.File)
		if err != nil {
			return nil, fmt.Errorf("relativize %s against %s: %w", obs.File, outputDir, err)
		}

		timestamp := obs.Timestamp()
		doc.Bands = append(doc.Bands, RasterBand{
			DataType:    geometry.DataType,
			Band:        i + 1,
			Description: obs.Description(),
			Metadata: Metadata{Items: []MDI{
				{Key: "ACQUISITION_DATE", Value: timestamp.Format("2006-01-02")},
				{Key: "ACQUISITION_TIME", Value: obs.Clock.HMS()},
				{Key: "START_TIME", Value: timestamp.Format("2006-01-02T15:04:05")},
				{Key: "END_TIME", Value: timestamp.Format("2006-01-02T15:04:05")},
				{Key: "PLATFORM", Value: string(obs.Platform)},
				{Key: "BAND_NAME", Value: string(obs.Band)},
			}},
			Source: SimpleSource{
				Filename: SourceFilename{
					RelativeToVRT: 1,
					Path:          filepath.ToSlash(relative),
				},
				Band: obs.BandIndex,
				Properties: SourceProperties{
					RasterXSize: geometry.Width,
					RasterYSize: geometry.Height,
					DataType:    geometry.DataType,
				},
				SrcRect: fullExtent,
				DstRect: fullExtent,
			},
		})
	}

	return doc, nil
}

func uniqueFiles(observations []mosaic.Observation) []string {
	seen := make(map[string]struct{}, len(observations))
	var files []string
	for _, obs := range observations {
		if _, ok := seen[obs.File]; ok {
			continue
		}
		seen[obs.File] = struct{}{}
		files = append(files, obs.File)
	}
	return files
}
