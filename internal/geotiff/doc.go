// Package geotiff reads raster geometry from GeoTIFF headers.
//
// Only the tag table is parsed; pixel data is never read. That is enough for
// the mosaic builder, which needs each source file's dimensions, affine
// geotransform, coordinate-reference text, and sample type to write the
// virtual-mosaic container.
package geotiff
