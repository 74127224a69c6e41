package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePlatform(); err != nil {
		return err
	}
	if err := c.normalizeVRT(); err != nil {
		return err
	}
	c.normalizeThermal()
	c.normalizeWind()
	c.normalizeExport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePlatform() error {
	c.Platform.BaseURL = strings.TrimRight(strings.TrimSpace(c.Platform.BaseURL), "/")
	if c.Platform.BaseURL == "" {
		c.Platform.BaseURL = defaultPlatformBaseURL
	}
	c.Platform.Project = strings.TrimSpace(c.Platform.Project)
	if c.Platform.Project == "" {
		if value, ok := os.LookupEnv("EE_PROJECT"); ok {
			c.Platform.Project = strings.TrimSpace(value)
		}
	}
	c.Platform.AccessToken = strings.TrimSpace(c.Platform.AccessToken)
	if c.Platform.AccessToken == "" {
		if value, ok := os.LookupEnv("EE_ACCESS_TOKEN"); ok {
			c.Platform.AccessToken = strings.TrimSpace(value)
		}
	}
	if c.Platform.RequestTimeout <= 0 {
		c.Platform.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizeVRT() error {
	var err error
	if strings.TrimSpace(c.VRT.TerraDir) == "" {
		c.VRT.TerraDir = defaultVRTTerraDir
	}
	if c.VRT.TerraDir, err = expandPath(c.VRT.TerraDir); err != nil {
		return fmt.Errorf("vrt.terra_dir: %w", err)
	}
	if strings.TrimSpace(c.VRT.AquaDir) == "" {
		c.VRT.AquaDir = defaultVRTAquaDir
	}
	if c.VRT.AquaDir, err = expandPath(c.VRT.AquaDir); err != nil {
		return fmt.Errorf("vrt.aqua_dir: %w", err)
	}
	if strings.TrimSpace(c.VRT.Output) == "" {
		c.VRT.Output = defaultVRTOutput
	}
	if c.VRT.Output, err = expandPath(c.VRT.Output); err != nil {
		return fmt.Errorf("vrt.output: %w", err)
	}
	c.VRT.FilePrefix = strings.TrimSpace(c.VRT.FilePrefix)
	if c.VRT.FilePrefix == "" {
		c.VRT.FilePrefix = defaultNamePrefix
	}
	c.VRT.Mode = strings.ToLower(strings.TrimSpace(c.VRT.Mode))
	if c.VRT.Mode == "" {
		c.VRT.Mode = defaultVRTMode
	}
	return nil
}

func (c *Config) normalizeThermal() {
	if strings.TrimSpace(c.Thermal.TerraCollection) == "" {
		c.Thermal.TerraCollection = defaultTerraCollection
	}
	if strings.TrimSpace(c.Thermal.AquaCollection) == "" {
		c.Thermal.AquaCollection = defaultAquaCollection
	}
	if strings.TrimSpace(c.Thermal.DayBand) == "" {
		c.Thermal.DayBand = defaultDayBand
	}
	if strings.TrimSpace(c.Thermal.NightBand) == "" {
		c.Thermal.NightBand = defaultNightBand
	}
	if c.Thermal.Scale <= 0 {
		c.Thermal.Scale = defaultThermalScale
	}
	if strings.TrimSpace(c.Thermal.Folder) == "" {
		c.Thermal.Folder = defaultThermalFolder
	}
	c.Thermal.NamePrefix = strings.TrimSpace(c.Thermal.NamePrefix)
	if c.Thermal.NamePrefix == "" {
		c.Thermal.NamePrefix = defaultNamePrefix
	}
}

func (c *Config) normalizeWind() {
	if strings.TrimSpace(c.Wind.Collection) == "" {
		c.Wind.Collection = defaultWindCollection
	}
	if strings.TrimSpace(c.Wind.UBand) == "" {
		c.Wind.UBand = defaultWindUBand
	}
	if strings.TrimSpace(c.Wind.VBand) == "" {
		c.Wind.VBand = defaultWindVBand
	}
	if c.Wind.Scale <= 0 {
		c.Wind.Scale = defaultWindScale
	}
	if strings.TrimSpace(c.Wind.Folder) == "" {
		c.Wind.Folder = defaultWindFolder
	}
}

func (c *Config) normalizeExport() {
	if c.Export.MaxPixels <= 0 {
		c.Export.MaxPixels = defaultMaxPixels
	}
	if strings.TrimSpace(c.Export.CRS) == "" {
		c.Export.CRS = defaultCRS
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
