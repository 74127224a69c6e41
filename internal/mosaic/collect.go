package mosaic

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Source is one platform's directory of downloaded LST GeoTIFFs.
type Source struct {
	Dir      string
	Platform Platform
}

var dateToken = regexp.MustCompile(`^\d{8}$`)

// Collect enumerates the LST GeoTIFFs under each source directory, expands
// them into observations according to mode, and returns the combined sequence
// sorted chronologically by (calendar date, nominal clock time).
//
// File names must follow <prefix>_<platform>_LST_<YYYYMMDD>.tif; the date is
// taken from the last underscore-delimited token. A trailing token that is
// not an 8-digit calendar date is an error rather than a skip, so a stray
// file cannot silently change the band count of the output mosaic.
func Collect(sources []Source, prefix string, mode Mode) ([]Observation, error) {
	var observations []Observation
	for _, source := range sources {
		pattern := filepath.Join(source.Dir, fmt.Sprintf("%s_%s_LST_*.tif", prefix, source.Platform))
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", source.Dir, err)
		}
		sort.Strings(matches)

		for _, file := range matches {
			dateKey, err := dateKeyFromFilename(file)
			if err != nil {
				return nil, err
			}
			observations = append(observations, expand(file, source.Platform, dateKey, mode)...)
		}
	}

	if len(observations) == 0 {
		dirs := make([]string, 0, len(sources))
		for _, source := range sources {
			dirs = append(dirs, source.Dir)
		}
		return nil, fmt.Errorf("no input: no %s_*_LST_*.tif files found under %s", prefix, strings.Join(dirs, " or "))
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Timestamp().Before(observations[j].Timestamp())
	})
	return observations, nil
}

func dateKeyFromFilename(file string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	tokens := strings.Split(base, "_")
	token := tokens[len(tokens)-1]
	if !dateToken.MatchString(token) {
		return "", fmt.Errorf("parse acquisition date from %q: trailing token %q is not an 8-digit date", filepath.Base(file), token)
	}
	if _, err := time.Parse("20060102", token); err != nil {
		return "", fmt.Errorf("parse acquisition date from %q: %w", filepath.Base(file), err)
	}
	return token, nil
}

func expand(file string, platform Platform, dateKey string, mode Mode) []Observation {
	var out []Observation
	for _, band := range []Band{BandDay, BandNight} {
		if mode == ModeDay && band != BandDay {
			continue
		}
		if mode == ModeNight && band != BandNight {
			continue
		}
		out = append(out, Observation{
			File:      file,
			BandIndex: band.BandIndex(),
			Platform:  platform,
			Band:      band,
			DateKey:   dateKey,
			Clock:     overpassClock[overpass{platform, band}],
		})
	}
	return out
}

// Summary condenses an observation sequence for user-facing reporting.
type Summary struct {
	Count int
	First time.Time
	Last  time.Time
}

// Summarize reports the count and chronological extent of obs, which must
// already be sorted.
func Summarize(obs []Observation) Summary {
	s := Summary{Count: len(obs)}
	if len(obs) > 0 {
		s.First = obs[0].Timestamp()
		s.Last = obs[len(obs)-1].Timestamp()
	}
	return s
}
