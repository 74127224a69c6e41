package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lstmosaic/internal/config"
	"lstmosaic/internal/logging"
	"lstmosaic/internal/mosaic"
	"lstmosaic/internal/vrt"
)

func newVRTCommand(ctx *commandContext) *cobra.Command {
	vrtCmd := &cobra.Command{
		Use:   "vrt",
		Short: "Build virtual mosaics from downloaded GeoTIFFs",
	}
	vrtCmd.AddCommand(newVRTBuildCommand(ctx))
	return vrtCmd
}

func newVRTBuildCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var outputFlag string
	var skipGeometryCheck bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a temporal VRT from Terra and Aqua LST files",
		Long: "Scans the configured Terra and Aqua directories, orders every\n" +
			"(file, band) pair by acquisition date and nominal overpass time, and\n" +
			"writes a single multi-band VRT referencing the source files in place.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			modeValue := cfg.VRT.Mode
			if modeFlag != "" {
				modeValue = modeFlag
			}
			mode, err := mosaic.ParseMode(modeValue)
			if err != nil {
				return err
			}

			output := cfg.VRT.Output
			if outputFlag != "" {
				output, err = config.ExpandPath(outputFlag)
				if err != nil {
					return err
				}
			}

			sources := []mosaic.Source{
				{Dir: cfg.VRT.TerraDir, Platform: mosaic.PlatformTerra},
				{Dir: cfg.VRT.AquaDir, Platform: mosaic.PlatformAqua},
			}
			observations, err := mosaic.Collect(sources, cfg.VRT.FilePrefix, mode)
			if err != nil {
				return err
			}

			geometry, err := vrt.ReferenceGeometry(observations, !skipGeometryCheck)
			if err != nil {
				return err
			}

			doc, err := vrt.Build(observations, geometry, output)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := doc.WriteFile(output); err != nil {
				return err
			}

			summary := mosaic.Summarize(observations)
			logger.Info("mosaic written",
				logging.Args(
					logging.String("output", output),
					logging.Int("bands", summary.Count),
					logging.Time("first", summary.First),
					logging.Time("last", summary.Last))...)

			printBuildSummary(cmd, observations, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "", "Band selection: both, day, or night (default from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output VRT path (default from config)")
	cmd.Flags().BoolVar(&skipGeometryCheck, "skip-geometry-check", false, "Take the grid from the first readable file without verifying the rest")

	return cmd
}

// printBuildSummary shows the band order the mosaic ended up with. Long runs
// are elided to the first and last five bands.
func printBuildSummary(cmd *cobra.Command, observations []mosaic.Observation, output string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s with %d bands\n", output, len(observations))

	const edge = 5
	shown := observations
	elided := 0
	if len(observations) > 2*edge {
		shown = make([]mosaic.Observation, 0, 2*edge)
		shown = append(shown, observations[:edge]...)
		shown = append(shown, observations[len(observations)-edge:]...)
		elided = len(observations) - 2*edge
	}

	rows := make([][]string, 0, len(shown)+1)
	for i, obs := range shown {
		band := i + 1
		if elided > 0 && i >= edge {
			band = len(observations) - (len(shown) - i) + 1
		}
		if elided > 0 && i == edge {
			rows = append(rows, []string{"…", fmt.Sprintf("(%d more)", elided), "", ""})
		}
		rows = append(rows, []string{
			fmt.Sprint(band),
			obs.Description(),
			string(obs.Platform) + " " + string(obs.Band),
			obs.Clock.HMS(),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Band", "Description", "Source", "Overpass"}, rows, []columnAlignment{alignRight}))
}
