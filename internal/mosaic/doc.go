// Package mosaic turns directories of per-date, dual-band MODIS LST GeoTIFFs
// into a chronologically ordered sequence of observations.
//
// An observation is one (file, band) pair stamped with the platform's nominal
// overpass time: Terra 10:30/22:30, Aqua 13:30/01:30 local. The Aqua night
// pass keeps the file's own calendar date even though 01:30 precedes the
// daytime pass, matching the source product's same-day filing convention.
// The ordered sequence feeds the vrt package, which wraps each observation in
// one output band of the virtual mosaic.
package mosaic
