package config

// Defaults reproduce the Mullen Fire study setup so a fresh install can run
// the original workflow without any configuration file.
const (
	defaultRegionWest  = -106.478103457299
	defaultRegionSouth = 40.9156198271091
	defaultRegionEast  = -106.020931772113
	defaultRegionNorth = 41.2802105182423

	defaultDateStart = "2020-09-17"
	defaultDateEnd   = "2020-10-21"

	defaultPlatformBaseURL = "https://earthengine.googleapis.com"
	defaultRequestTimeout  = 60

	defaultTerraCollection = "MODIS/061/MOD11A1"
	defaultAquaCollection  = "MODIS/061/MYD11A1"
	defaultDayBand         = "LST_Day_1km"
	defaultNightBand       = "LST_Night_1km"
	defaultThermalScale    = 1000
	defaultThermalFolder   = "GEE_exports/thermal_data"
	defaultNamePrefix      = "MODIS_MullenRegion"

	defaultWindCollection = "ECMWF/ERA5_LAND/DAILY_AGGR"
	defaultWindUBand      = "u_component_of_wind_10m"
	defaultWindVBand      = "v_component_of_wind_10m"
	defaultWindScale      = 11132
	defaultWindFolder     = "GEE_exports/wind_data"

	defaultMaxPixels = 1e13
	defaultCRS       = "EPSG:4326"

	defaultVRTTerraDir = "~/GEE_exports/thermal_data/Terra"
	defaultVRTAquaDir  = "~/GEE_exports/thermal_data/Aqua"
	defaultVRTOutput   = "~/GEE_exports/mullen_lst_temporal.vrt"
	defaultVRTMode     = "both"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Region: Region{
			West:  defaultRegionWest,
			South: defaultRegionSouth,
			East:  defaultRegionEast,
			North: defaultRegionNorth,
		},
		Dates: Dates{
			Start: defaultDateStart,
			End:   defaultDateEnd,
		},
		Platform: Platform{
			BaseURL:        defaultPlatformBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Thermal: Thermal{
			TerraCollection: defaultTerraCollection,
			AquaCollection:  defaultAquaCollection,
			DayBand:         defaultDayBand,
			NightBand:       defaultNightBand,
			Scale:           defaultThermalScale,
			Folder:          defaultThermalFolder,
			NamePrefix:      defaultNamePrefix,
		},
		Wind: Wind{
			Collection: defaultWindCollection,
			UBand:      defaultWindUBand,
			VBand:      defaultWindVBand,
			Scale:      defaultWindScale,
			Folder:     defaultWindFolder,
		},
		Export: Export{
			MaxPixels: defaultMaxPixels,
			CRS:       defaultCRS,
		},
		VRT: VRT{
			TerraDir:   defaultVRTTerraDir,
			AquaDir:    defaultVRTAquaDir,
			Output:     defaultVRTOutput,
			FilePrefix: defaultNamePrefix,
			Mode:       defaultVRTMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
