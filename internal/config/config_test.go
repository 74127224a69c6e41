package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lstmosaic/internal/config"
)

func TestLoadDefaultsUseEnvCredentialsAndExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("EE_PROJECT", "test-project")
	t.Setenv("EE_ACCESS_TOKEN", "test-token")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantTerra := filepath.Join(tempHome, "GEE_exports", "thermal_data", "Terra")
	if cfg.VRT.TerraDir != wantTerra {
		t.Fatalf("unexpected terra dir: got %q want %q", cfg.VRT.TerraDir, wantTerra)
	}
	if cfg.VRT.Mode != "both" {
		t.Fatalf("unexpected default mode: %q", cfg.VRT.Mode)
	}
	if cfg.Platform.Project != "test-project" {
		t.Fatalf("expected project from env, got %q", cfg.Platform.Project)
	}
	if cfg.Platform.AccessToken != "test-token" {
		t.Fatalf("expected token from env, got %q", cfg.Platform.AccessToken)
	}
	if cfg.Thermal.TerraCollection != "MODIS/061/MOD11A1" {
		t.Fatalf("unexpected terra collection: %q", cfg.Thermal.TerraCollection)
	}
	if cfg.Wind.Scale != 11132 {
		t.Fatalf("unexpected wind scale: %d", cfg.Wind.Scale)
	}
	if cfg.Export.MaxPixels != 1e13 {
		t.Fatalf("unexpected max pixels: %v", cfg.Export.MaxPixels)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[dates]",
		`start = "2021-06-01"`,
		`end = "2021-07-01"`,
		"",
		"[vrt]",
		`terra_dir = "` + filepath.ToSlash(filepath.Join(dir, "terra")) + `"`,
		`aqua_dir = "` + filepath.ToSlash(filepath.Join(dir, "aqua")) + `"`,
		`output = "` + filepath.ToSlash(filepath.Join(dir, "out.vrt")) + `"`,
		`mode = "Night"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Dates.Start != "2021-06-01" {
		t.Fatalf("unexpected start date: %q", cfg.Dates.Start)
	}
	if cfg.VRT.Mode != "night" {
		t.Fatalf("expected mode normalized to lowercase, got %q", cfg.VRT.Mode)
	}

	start, end, err := cfg.DateWindow()
	if err != nil {
		t.Fatalf("DateWindow returned error: %v", err)
	}
	if !start.Before(end) {
		t.Fatal("expected start before end")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid mode",
			content: "[vrt]\nmode = \"daily\"\n",
			wantErr: "vrt.mode",
		},
		{
			name:    "reversed dates",
			content: "[dates]\nstart = \"2020-10-21\"\nend = \"2020-09-17\"\n",
			wantErr: "dates.start",
		},
		{
			name:    "unparseable date",
			content: "[dates]\nstart = \"17-09-2020\"\n",
			wantErr: "dates.start must be YYYY-MM-DD",
		},
		{
			name:    "reversed region",
			content: "[region]\nwest = 10.0\neast = -10.0\n",
			wantErr: "region.west",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidatePlatformRequiresCredentials(t *testing.T) {
	t.Setenv("EE_PROJECT", "")
	t.Setenv("EE_ACCESS_TOKEN", "")

	cfg := config.Default()
	if err := cfg.ValidatePlatform(); err == nil {
		t.Fatal("expected missing-project error")
	}
	cfg.Platform.Project = "p"
	if err := cfg.ValidatePlatform(); err == nil {
		t.Fatal("expected missing-token error")
	}
	cfg.Platform.AccessToken = "tok"
	if err := cfg.ValidatePlatform(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Thermal.NamePrefix != "MODIS_MullenRegion" {
		t.Fatalf("unexpected name prefix: %q", cfg.Thermal.NamePrefix)
	}
}
