package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lstmosaic/internal/earthengine"
	"lstmosaic/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Submit batch export tasks to the imaging platform",
	}
	exportCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "List the tasks that would be submitted without submitting them")

	exportCmd.AddCommand(newExportThermalCommand(ctx, &dryRun))
	exportCmd.AddCommand(newExportWindCommand(ctx, &dryRun))

	return exportCmd
}

func newExportThermalCommand(ctx *commandContext, dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "thermal",
		Short: "Export MODIS Terra and Aqua land surface temperature",
		Long: "Exports one dual-band (day + night) LST GeoTIFF per acquisition day\n" +
			"from both MODIS platforms, cropped to the configured region.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runExport(cmd, ctx, export.ThermalPlans(cfg), *dryRun)
		},
	}
}

func newExportWindCommand(ctx *commandContext, dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "wind",
		Short: "Export ERA5-Land daily 10 m wind components",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runExport(cmd, ctx, []export.Plan{export.WindPlan(cfg)}, *dryRun)
		},
	}
}

func runExport(cmd *cobra.Command, ctx *commandContext, plans []export.Plan, dryRun bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	client, err := earthengine.NewClient(cfg, ctx.ensureLogger())
	if err != nil {
		return err
	}
	runner := export.NewRunner(cfg, client, ctx.ensureLogger())

	var results []export.Result
	if dryRun {
		results, err = runner.Preview(cmd.Context(), plans)
	} else {
		results, err = runner.Run(cmd.Context(), plans)
	}
	printExportResults(cmd, results, dryRun)
	return err
}

func printExportResults(cmd *cobra.Command, results []export.Result, dryRun bool) {
	out := cmd.OutOrStdout()
	total := 0
	for _, result := range results {
		if len(result.Submissions) == 0 {
			continue
		}
		total += len(result.Submissions)

		headers := []string{"Acquired", "Description", "Folder", "File"}
		if !dryRun {
			headers = append(headers, "Task")
		}
		rows := make([][]string, 0, len(result.Submissions))
		for _, sub := range result.Submissions {
			row := []string{
				sub.Taken.UTC().Format(time.DateOnly),
				sub.Description,
				sub.Folder,
				sub.FileName + ".tif",
			}
			if !dryRun {
				row = append(row, sub.TaskName)
			}
			rows = append(rows, row)
		}

		fmt.Fprintf(out, "Plan %s (%d tasks)\n", result.Plan.Label, len(result.Submissions))
		fmt.Fprintln(out, renderTable(headers, rows, nil))
	}

	if dryRun {
		fmt.Fprintf(out, "Dry run: %d tasks would be submitted\n", total)
	} else {
		fmt.Fprintf(out, "Submitted %d tasks\n", total)
	}
}
