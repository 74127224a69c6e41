// Package config loads, normalizes, and validates lstmosaic configuration
// data.
//
// It supplies the Mullen study defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EE_ACCESS_TOKEN and EE_PROJECT. The Config type centralizes every knob the
// export and mosaic commands need, so the region, date window, and local
// GeoTIFF directories are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
