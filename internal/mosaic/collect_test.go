package mosaic_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lstmosaic/internal/mosaic"
)

const prefix = "MODIS_MullenRegion"

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("tif"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func terraOnly(t *testing.T, names ...string) []mosaic.Source {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		touch(t, dir, name)
	}
	return []mosaic.Source{
		{Dir: dir, Platform: mosaic.PlatformTerra},
		{Dir: t.TempDir(), Platform: mosaic.PlatformAqua},
	}
}

func TestCollectBothYieldsTwoObservationsPerFileInOrder(t *testing.T) {
	sources := terraOnly(t,
		prefix+"_Terra_LST_20200918.tif",
		prefix+"_Terra_LST_20200917.tif",
		prefix+"_Terra_LST_20200920.tif",
	)

	obs, err := mosaic.Collect(sources, prefix, mosaic.ModeBoth)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(obs) != 6 {
		t.Fatalf("expected 6 observations, got %d", len(obs))
	}

	wantClock := []string{"1030", "2230", "1030", "2230", "1030", "2230"}
	wantDates := []string{"20200917", "20200917", "20200918", "20200918", "20200920", "20200920"}
	for i, o := range obs {
		if o.Clock.HHMM() != wantClock[i] {
			t.Fatalf("observation %d: clock %s, want %s", i, o.Clock.HHMM(), wantClock[i])
		}
		if o.DateKey != wantDates[i] {
			t.Fatalf("observation %d: date %s, want %s", i, o.DateKey, wantDates[i])
		}
	}
	for i := 1; i < len(obs); i++ {
		if obs[i].Timestamp().Before(obs[i-1].Timestamp()) {
			t.Fatalf("sequence not sorted at index %d", i)
		}
	}
}

func TestCollectAquaNightKeepsSameDayDate(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, prefix+"_Aqua_LST_20200917.tif")
	sources := []mosaic.Source{
		{Dir: t.TempDir(), Platform: mosaic.PlatformTerra},
		{Dir: dir, Platform: mosaic.PlatformAqua},
	}

	obs, err := mosaic.Collect(sources, prefix, mosaic.ModeNight)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(obs) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(obs))
	}
	got := obs[0]
	if got.DateKey != "20200917" {
		t.Fatalf("night observation date shifted: got %s, want 20200917", got.DateKey)
	}
	if got.Clock.HMS() != "01:30:00" {
		t.Fatalf("unexpected clock time: %s", got.Clock.HMS())
	}
	if got.Timestamp().Format("2006-01-02T15:04:05") != "2020-09-17T01:30:00" {
		t.Fatalf("unexpected timestamp: %s", got.Timestamp())
	}
}

func TestCollectSingleBandModesYieldOneObservationPerFile(t *testing.T) {
	for _, tc := range []struct {
		mode  mosaic.Mode
		band  mosaic.Band
		index int
	}{
		{mosaic.ModeDay, mosaic.BandDay, 1},
		{mosaic.ModeNight, mosaic.BandNight, 2},
	} {
		sources := terraOnly(t,
			prefix+"_Terra_LST_20200917.tif",
			prefix+"_Terra_LST_20200918.tif",
		)
		obs, err := mosaic.Collect(sources, prefix, tc.mode)
		if err != nil {
			t.Fatalf("mode %s: %v", tc.mode, err)
		}
		if len(obs) != 2 {
			t.Fatalf("mode %s: expected 2 observations, got %d", tc.mode, len(obs))
		}
		for _, o := range obs {
			if o.Band != tc.band || o.BandIndex != tc.index {
				t.Fatalf("mode %s: got band %s index %d", tc.mode, o.Band, o.BandIndex)
			}
		}
	}
}

func TestCollectEmptyDirectoriesFails(t *testing.T) {
	sources := []mosaic.Source{
		{Dir: t.TempDir(), Platform: mosaic.PlatformTerra},
		{Dir: t.TempDir(), Platform: mosaic.PlatformAqua},
	}
	_, err := mosaic.Collect(sources, prefix, mosaic.ModeBoth)
	if err == nil {
		t.Fatal("expected no-input error")
	}
	if !strings.Contains(err.Error(), "no input") {
		t.Fatalf("error does not describe missing input: %v", err)
	}
}

func TestCollectMalformedDateTokenFails(t *testing.T) {
	sources := terraOnly(t, prefix+"_Terra_LST_sept17.tif")
	_, err := mosaic.Collect(sources, prefix, mosaic.ModeBoth)
	if err == nil {
		t.Fatal("expected malformed-date error")
	}
	if !strings.Contains(err.Error(), "sept17") {
		t.Fatalf("error does not name the bad token: %v", err)
	}
}

func TestCollectInterleavesPlatformsChronologically(t *testing.T) {
	terraDir := t.TempDir()
	aquaDir := t.TempDir()
	touch(t, terraDir, prefix+"_Terra_LST_20200917.tif")
	touch(t, aquaDir, prefix+"_Aqua_LST_20200917.tif")
	sources := []mosaic.Source{
		{Dir: terraDir, Platform: mosaic.PlatformTerra},
		{Dir: aquaDir, Platform: mosaic.PlatformAqua},
	}

	obs, err := mosaic.Collect(sources, prefix, mosaic.ModeBoth)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	var got []string
	for _, o := range obs {
		got = append(got, o.Description())
	}
	want := []string{
		"20200917_Aqua_Night_0130",
		"20200917_Terra_Day_1030",
		"20200917_Aqua_Day_1330",
		"20200917_Terra_Night_2230",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d observations, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}

	summary := mosaic.Summarize(obs)
	if summary.Count != 4 {
		t.Fatalf("unexpected summary count: %d", summary.Count)
	}
	if !summary.First.Equal(obs[0].Timestamp()) || !summary.Last.Equal(obs[3].Timestamp()) {
		t.Fatal("summary extent does not match sequence")
	}
}

func TestParseMode(t *testing.T) {
	if _, err := mosaic.ParseMode("daily"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	mode, err := mosaic.ParseMode("night")
	if err != nil {
		t.Fatalf("ParseMode returned error: %v", err)
	}
	if mode != mosaic.ModeNight {
		t.Fatalf("unexpected mode: %s", mode)
	}
}
