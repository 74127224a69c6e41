// Package export turns configuration into batch export plans and drives
// them against the imaging platform, one task per acquired image.
package export
