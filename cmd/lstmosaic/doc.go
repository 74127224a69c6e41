// Command lstmosaic exports MODIS land-surface-temperature and ERA5-Land
// wind imagery from a cloud imaging platform and assembles the downloaded
// thermal GeoTIFFs into a chronologically ordered virtual mosaic.
package main
