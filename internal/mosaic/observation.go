package mosaic

import (
	"fmt"
	"time"
)

// Platform identifies the satellite that acquired an LST granule.
type Platform string

const (
	PlatformTerra Platform = "Terra"
	PlatformAqua  Platform = "Aqua"
)

// Band names the diurnal LST channel inside a source raster.
// Band 1 of every source file is the daytime retrieval, band 2 the nighttime
// retrieval.
type Band string

const (
	BandDay   Band = "Day"
	BandNight Band = "Night"
)

// BandIndex returns the source raster plane holding this band.
func (b Band) BandIndex() int {
	if b == BandNight {
		return 2
	}
	return 1
}

// Mode selects which diurnal channels Collect turns into observations.
type Mode string

const (
	ModeBoth  Mode = "both"
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
)

// ParseMode validates a user-supplied band-selection mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeBoth, ModeDay, ModeNight:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("band mode must be one of both, day, night (got %q)", value)
	}
}

// ClockTime is a nominal local wall-clock overpass time.
type ClockTime struct {
	Hour   int
	Minute int
}

// HHMM renders the clock time as a four-digit label, e.g. "0130".
func (c ClockTime) HHMM() string {
	return fmt.Sprintf("%02d%02d", c.Hour, c.Minute)
}

// HMS renders the clock time with seconds, e.g. "01:30:00".
func (c ClockTime) HMS() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour, c.Minute)
}

type overpass struct {
	platform Platform
	band     Band
}

// overpassClock maps each (platform, band) pair to its nominal local
// acquisition time. The values are MODIS sun-synchronous overpass times, not
// anything read from the files.
//
// Aqua's night overpass (01:30) is earlier in the 24-hour clock than the
// granule's calendar date suggests, yet the date is deliberately NOT shifted
// to the previous day: the source product files nighttime retrievals under
// the same date as the matching daytime pass. Keep it that way.
var overpassClock = map[overpass]ClockTime{
	{PlatformTerra, BandDay}:   {Hour: 10, Minute: 30},
	{PlatformTerra, BandNight}: {Hour: 22, Minute: 30},
	{PlatformAqua, BandDay}:    {Hour: 13, Minute: 30},
	{PlatformAqua, BandNight}:  {Hour: 1, Minute: 30},
}

// Observation is one (file, band) pair with its assigned nominal acquisition
// time. Observations are constructed by Collect and never mutated afterwards.
type Observation struct {
	File      string
	BandIndex int
	Platform  Platform
	Band      Band
	DateKey   string // 8-digit calendar date from the filename
	Clock     ClockTime
}

// Timestamp combines the calendar date and nominal clock time into a single
// instant (UTC, same-day pairing per the overpassClock convention).
func (o Observation) Timestamp() time.Time {
	day, _ := time.Parse("20060102", o.DateKey)
	return day.Add(time.Duration(o.Clock.Hour)*time.Hour + time.Duration(o.Clock.Minute)*time.Minute)
}

// Description is the human-readable band label written into the mosaic,
// e.g. "20200917_Aqua_Night_0130". Unique per observation.
func (o Observation) Description() string {
	return fmt.Sprintf("%s_%s_%s_%s", o.DateKey, o.Platform, o.Band, o.Clock.HHMM())
}
