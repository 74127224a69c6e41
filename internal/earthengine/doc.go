// Package earthengine is a thin REST client for the cloud imaging
// platform: collection listing filtered by time window and region, and
// fire-and-forget export task submission. Nothing here tracks or awaits
// task state; the remote queue owns submitted work.
package earthengine
