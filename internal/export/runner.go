package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lstmosaic/internal/config"
	"lstmosaic/internal/earthengine"
	"lstmosaic/internal/logging"
)

// Submitter is the slice of the platform client the runner needs. The
// concrete implementation is earthengine.Client.
type Submitter interface {
	ListImages(ctx context.Context, collection string, dates earthengine.DateRange, region earthengine.Region) ([]earthengine.Image, error)
	Export(ctx context.Context, req earthengine.ExportRequest) (*earthengine.Task, error)
}

// Submission records one task handed to the platform.
type Submission struct {
	Description string
	FileName    string
	Folder      string
	Taken       time.Time
	TaskName    string
}

// Result summarizes one plan run.
type Result struct {
	Plan        Plan
	Submissions []Submission
}

// Runner lists images for each plan and submits one export task per image,
// in acquisition order. It stops at the first submission failure; tasks
// already handed over keep running remotely and are not recalled.
type Runner struct {
	cfg    *config.Config
	client Submitter
	logger *slog.Logger
}

func NewRunner(cfg *config.Config, client Submitter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, client: client, logger: logger}
}

// Run executes every plan sequentially. Results cover completed plans plus
// whatever the failing plan submitted before the error.
func (r *Runner) Run(ctx context.Context, plans []Plan) ([]Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String("run_id", runID))

	dates, region, err := r.window()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(plans))
	for _, plan := range plans {
		logger.Info("listing collection",
			logging.Args(logging.String("plan", plan.Label), logging.String("collection", plan.Collection))...)

		images, err := r.client.ListImages(ctx, plan.Collection, dates, region)
		if err != nil {
			return results, err
		}
		if len(images) == 0 {
			return results, fmt.Errorf("plan %s: no images in %s between %s and %s",
				plan.Label, plan.Collection, r.cfg.Dates.Start, r.cfg.Dates.End)
		}

		result := Result{Plan: plan}
		for _, img := range images {
			req := plan.Request(img, r.cfg)
			task, err := r.client.Export(ctx, req)
			if err != nil {
				results = append(results, result)
				return results, fmt.Errorf("plan %s: submit %s: %w", plan.Label, req.Description, err)
			}
			result.Submissions = append(result.Submissions, Submission{
				Description: req.Description,
				FileName:    req.NamePrefix,
				Folder:      req.Folder,
				Taken:       img.Time(),
				TaskName:    task.Name,
			})
			logger.Info("task submitted",
				logging.Args(
					logging.String("plan", plan.Label),
					logging.String("description", req.Description),
					logging.String("task", task.Name))...)
		}
		results = append(results, result)

		logger.Info("plan complete",
			logging.Args(logging.String("plan", plan.Label), logging.Int("tasks", len(result.Submissions)))...)
	}
	return results, nil
}

// Preview lists images for each plan and reports the submissions Run would
// make, without touching the export endpoint.
func (r *Runner) Preview(ctx context.Context, plans []Plan) ([]Result, error) {
	dates, region, err := r.window()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(plans))
	for _, plan := range plans {
		images, err := r.client.ListImages(ctx, plan.Collection, dates, region)
		if err != nil {
			return results, err
		}
		result := Result{Plan: plan}
		for _, img := range images {
			req := plan.Request(img, r.cfg)
			result.Submissions = append(result.Submissions, Submission{
				Description: req.Description,
				FileName:    req.NamePrefix,
				Folder:      req.Folder,
				Taken:       img.Time(),
			})
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) window() (earthengine.DateRange, earthengine.Region, error) {
	start, end, err := r.cfg.DateWindow()
	if err != nil {
		return earthengine.DateRange{}, earthengine.Region{}, err
	}
	dates := earthengine.DateRange{Start: start, End: end}
	region := earthengine.Region{
		West:  r.cfg.Region.West,
		South: r.cfg.Region.South,
		East:  r.cfg.Region.East,
		North: r.cfg.Region.North,
	}
	return dates, region, nil
}
