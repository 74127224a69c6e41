package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Region is the rectangular area of interest used to filter and crop
// remote imagery, in geographic degrees.
type Region struct {
	West  float64 `toml:"west"`
	South float64 `toml:"south"`
	East  float64 `toml:"east"`
	North float64 `toml:"north"`
}

// Dates bounds the export date filter. Start is inclusive, End exclusive.
type Dates struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// Platform contains connection settings for the Earth Engine REST API.
type Platform struct {
	BaseURL        string `toml:"base_url"`
	Project        string `toml:"project"`
	AccessToken    string `toml:"access_token"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Thermal configures the MODIS land-surface-temperature exports.
type Thermal struct {
	TerraCollection string `toml:"terra_collection"`
	AquaCollection  string `toml:"aqua_collection"`
	DayBand         string `toml:"day_band"`
	NightBand       string `toml:"night_band"`
	Scale           int    `toml:"scale"`
	Folder          string `toml:"folder"`
	NamePrefix      string `toml:"name_prefix"`
}

// Wind configures the ERA5-Land 10 m wind exports.
type Wind struct {
	Collection string `toml:"collection"`
	UBand      string `toml:"u_band"`
	VBand      string `toml:"v_band"`
	Scale      int    `toml:"scale"`
	Folder     string `toml:"folder"`
}

// Export contains settings shared by every export task.
type Export struct {
	MaxPixels float64 `toml:"max_pixels"`
	CRS       string  `toml:"crs"`
}

// VRT configures the temporal virtual-mosaic builder.
type VRT struct {
	TerraDir   string `toml:"terra_dir"`
	AquaDir    string `toml:"aqua_dir"`
	Output     string `toml:"output"`
	FilePrefix string `toml:"file_prefix"`
	Mode       string `toml:"mode"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for lstmosaic.
//
// Configuration sections by subsystem:
//   - Region: geographic extent for export filtering and cropping
//   - Dates: export date window (start inclusive, end exclusive)
//   - Platform: Earth Engine REST endpoint, project, credentials
//   - Thermal: MODIS Terra/Aqua LST export settings
//   - Wind: ERA5-Land wind export settings
//   - Export: scale-independent export knobs (max pixels, output CRS)
//   - VRT: local GeoTIFF directories and mosaic output
//   - Logging: log format and level
type Config struct {
	Region   Region   `toml:"region"`
	Dates    Dates    `toml:"dates"`
	Platform Platform `toml:"platform"`
	Thermal  Thermal  `toml:"thermal"`
	Wind     Wind     `toml:"wind"`
	Export   Export   `toml:"export"`
	VRT      VRT      `toml:"vrt"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lstmosaic/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lstmosaic.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// DateWindow returns the parsed export date range. Validate has already
// checked both values, so parse errors here indicate a programming error.
func (c *Config) DateWindow() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.Dates.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("dates.start: %w", err)
	}
	end, err = time.Parse("2006-01-02", c.Dates.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("dates.end: %w", err)
	}
	return start, end, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
