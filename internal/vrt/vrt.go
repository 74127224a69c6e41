package vrt

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Document is the VRT container: a declarative XML description wrapping one
// output band per observation, each referencing pixel data in an external
// GeoTIFF rather than copying it.
type Document struct {
	XMLName      xml.Name     `xml:"VRTDataset"`
	RasterXSize  int          `xml:"rasterXSize,attr"`
	RasterYSize  int          `xml:"rasterYSize,attr"`
	SRS          string       `xml:"SRS,omitempty"`
	GeoTransform string       `xml:"GeoTransform"`
	Bands        []RasterBand `xml:"VRTRasterBand"`
}

// RasterBand is one output band wrapping a single observation.
type RasterBand struct {
	DataType    string       `xml:"dataType,attr"`
	Band        int          `xml:"band,attr"`
	Description string       `xml:"Description"`
	Metadata    Metadata     `xml:"Metadata"`
	Source      SimpleSource `xml:"SimpleSource"`
}

// Metadata holds the band's named string key/value pairs.
type Metadata struct {
	Items []MDI `xml:"MDI"`
}

// MDI is a single metadata item.
type MDI struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// SimpleSource points a band at one plane of an external raster, full extent,
// no resampling.
type SimpleSource struct {
	Filename   SourceFilename   `xml:"SourceFilename"`
	Band       int              `xml:"SourceBand"`
	Properties SourceProperties `xml:"SourceProperties"`
	SrcRect    Rect             `xml:"SrcRect"`
	DstRect    Rect             `xml:"DstRect"`
}

// SourceFilename carries the path to the source raster, relative to the
// container's own location.
type SourceFilename struct {
	RelativeToVRT int    `xml:"relativeToVRT,attr"`
	Path          string `xml:",chardata"`
}

// SourceProperties mirrors the source raster's shape so readers can size
// buffers without opening the file.
type SourceProperties struct {
	RasterXSize int    `xml:"RasterXSize,attr"`
	RasterYSize int    `xml:"RasterYSize,attr"`
	DataType    string `xml:"DataType,attr"`
}

// Rect is a pixel window.
type Rect struct {
	XOff  int `xml:"xOff,attr"`
	YOff  int `xml:"yOff,attr"`
	XSize int `xml:"xSize,attr"`
	YSize int `xml:"ySize,attr"`
}

// FormatGeoTransform renders the six affine parameters the way GDAL expects
// them inside a VRT: comma-space separated.
func FormatGeoTransform(transform [6]float64) string {
	parts := make([]string, len(transform))
	for i, v := range transform {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// WriteFile serializes the document to path, overwriting any existing file.
// There is no atomic-rename step; a failed write can leave a partial file.
func (d *Document) WriteFile(path string) error {
	raw, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mosaic: %w", err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write mosaic: %w", err)
	}
	return nil
}
