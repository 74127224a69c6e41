// Package vrt emits the temporal virtual-mosaic container.
//
// The container is GDAL's VRT dialect: an XML document whose bands reference
// pixel data in external GeoTIFFs. Each band wraps one observation in
// chronological order and carries acquisition date/time, platform, and band
// name as metadata, so a time-series reader can reconstruct the four daily
// MODIS overpasses from the band sequence alone.
package vrt
