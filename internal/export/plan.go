package export

import (
	"fmt"
	"path"
	"time"

	"lstmosaic/internal/config"
	"lstmosaic/internal/earthengine"
)

// dateFormat is the compact day key embedded in task descriptions and
// exported file names.
const dateFormat = "20060102"

// Plan describes one collection's worth of export tasks: which images to
// list and how to name, band-select, and deliver each resulting file.
type Plan struct {
	Label      string
	Collection string
	Bands      []string
	Folder     string
	Scale      float64

	// descriptionFor and fileNameFor derive per-image identifiers from
	// the acquisition day.
	descriptionFor func(dateKey string) string
	fileNameFor    func(dateKey string) string
}

// Description names the task submitted for an image acquired at t.
func (p Plan) Description(t time.Time) string {
	return p.descriptionFor(t.UTC().Format(dateFormat))
}

// FileName names the file the platform will deliver for an image acquired
// at t, without extension.
func (p Plan) FileName(t time.Time) string {
	return p.fileNameFor(t.UTC().Format(dateFormat))
}

// ThermalPlans builds one plan per MODIS platform. Terra and Aqua exports
// land in sibling folders so the mosaic builder can tell overpasses apart
// by directory alone.
func ThermalPlans(cfg *config.Config) []Plan {
	plans := make([]Plan, 0, 2)
	for _, sat := range []struct {
		name       string
		collection string
	}{
		{"Terra", cfg.Thermal.TerraCollection},
		{"Aqua", cfg.Thermal.AquaCollection},
	} {
		sat := sat
		prefix := cfg.Thermal.NamePrefix
		plans = append(plans, Plan{
			Label:      "thermal/" + sat.name,
			Collection: sat.collection,
			Bands:      []string{cfg.Thermal.DayBand, cfg.Thermal.NightBand},
			Folder:     path.Join(cfg.Thermal.Folder, sat.name),
			Scale:      float64(cfg.Thermal.Scale),
			descriptionFor: func(dateKey string) string {
				return fmt.Sprintf("MODIS_%s_LST_%s", sat.name, dateKey)
			},
			fileNameFor: func(dateKey string) string {
				return fmt.Sprintf("%s_%s_LST_%s", prefix, sat.name, dateKey)
			},
		})
	}
	return plans
}

// WindPlan builds the single ERA5-Land 10 m wind plan. Both wind components
// export together in one dual-band file per day.
func WindPlan(cfg *config.Config) Plan {
	return Plan{
		Label:      "wind",
		Collection: cfg.Wind.Collection,
		Bands:      []string{cfg.Wind.UBand, cfg.Wind.VBand},
		Folder:     cfg.Wind.Folder,
		Scale:      float64(cfg.Wind.Scale),
		descriptionFor: func(dateKey string) string {
			return "ERA5L_wind_10m_" + dateKey
		},
		fileNameFor: func(dateKey string) string {
			return "era5land_wind_10m_" + dateKey
		},
	}
}

// Request assembles the platform submission for one image under this plan.
func (p Plan) Request(img earthengine.Image, cfg *config.Config) earthengine.ExportRequest {
	return earthengine.ExportRequest{
		ImageName:   img.Name,
		Bands:       p.Bands,
		Description: p.Description(img.Time()),
		Folder:      p.Folder,
		NamePrefix:  p.FileName(img.Time()),
		Region: earthengine.Region{
			West:  cfg.Region.West,
			South: cfg.Region.South,
			East:  cfg.Region.East,
			North: cfg.Region.North,
		},
		Scale:     p.Scale,
		MaxPixels: cfg.Export.MaxPixels,
		CRS:       cfg.Export.CRS,
	}
}
