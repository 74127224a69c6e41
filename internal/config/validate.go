package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRegion(); err != nil {
		return err
	}
	if err := c.validateDates(); err != nil {
		return err
	}
	if err := c.validateVRT(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRegion() error {
	if c.Region.West >= c.Region.East {
		return fmt.Errorf("region.west (%v) must be less than region.east (%v)", c.Region.West, c.Region.East)
	}
	if c.Region.South >= c.Region.North {
		return fmt.Errorf("region.south (%v) must be less than region.north (%v)", c.Region.South, c.Region.North)
	}
	if c.Region.West < -180 || c.Region.East > 180 {
		return errors.New("region longitudes must be within [-180, 180]")
	}
	if c.Region.South < -90 || c.Region.North > 90 {
		return errors.New("region latitudes must be within [-90, 90]")
	}
	return nil
}

func (c *Config) validateDates() error {
	start, err := time.Parse("2006-01-02", c.Dates.Start)
	if err != nil {
		return fmt.Errorf("dates.start must be YYYY-MM-DD: %w", err)
	}
	end, err := time.Parse("2006-01-02", c.Dates.End)
	if err != nil {
		return fmt.Errorf("dates.end must be YYYY-MM-DD: %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("dates.start (%s) must be before dates.end (%s, exclusive)", c.Dates.Start, c.Dates.End)
	}
	return nil
}

func (c *Config) validateVRT() error {
	switch c.VRT.Mode {
	case "both", "day", "night":
	default:
		return fmt.Errorf("vrt.mode must be one of both, day, night (got %q)", c.VRT.Mode)
	}
	if c.VRT.TerraDir == "" || c.VRT.AquaDir == "" {
		return errors.New("vrt.terra_dir and vrt.aqua_dir must be set")
	}
	if c.VRT.Output == "" {
		return errors.New("vrt.output must be set")
	}
	return nil
}

// ValidatePlatform checks the settings the export commands need. It is kept
// out of Validate so the mosaic builder works without platform credentials.
func (c *Config) ValidatePlatform() error {
	if c.Platform.Project == "" {
		return errors.New("platform.project is required. Set EE_PROJECT or edit the config file (create with 'lstmosaic config init')")
	}
	if c.Platform.AccessToken == "" {
		return errors.New("platform.access_token is required. Set EE_ACCESS_TOKEN or edit the config file")
	}
	return nil
}
