package earthengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lstmosaic/internal/config"
	"lstmosaic/internal/logging"
)

const userAgent = "lstmosaic/0.1.0"

// listPageSize bounds one listing request; collections in a one-month window
// stay well under a handful of pages.
const listPageSize = 100

// Client talks to the Earth Engine REST surface: image listing over a
// collection filter and per-image export task submission. It performs no
// task polling; submitted tasks are owned by the remote queue.
type Client struct {
	baseURL    string
	project    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a platform client from configuration. Credentials are
// required: export is the only thing this client is for.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.ValidatePlatform(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.Platform.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.Platform.BaseURL, "/"),
		project:    cfg.Platform.Project,
		token:      cfg.Platform.AccessToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// ListImages enumerates every image of collection whose acquisition instant
// falls inside dates (start inclusive, end exclusive) and intersects region.
// Pages are followed until the platform stops returning a token.
func (c *Client) ListImages(ctx context.Context, collection string, dates DateRange, region Region) ([]Image, error) {
	endpoint := fmt.Sprintf("%s/v1/projects/%s/assets/%s:listImages",
		c.baseURL, c.project, url.PathEscape(collection))

	regionJSON, err := json.Marshal(region.GeoJSON())
	if err != nil {
		return nil, fmt.Errorf("encode region filter: %w", err)
	}

	var (
		images    []Image
		pageToken string
	)
	for {
		query := url.Values{}
		query.Set("startTime", dates.Start.UTC().Format(time.RFC3339))
		query.Set("endTime", dates.End.UTC().Format(time.RFC3339))
		query.Set("region", string(regionJSON))
		query.Set("pageSize", fmt.Sprint(listPageSize))
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var page listImagesResponse
		if err := c.get(ctx, endpoint+"?"+query.Encode(), &page); err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		images = append(images, page.Images...)
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	c.logger.Debug("listed collection",
		logging.Args(logging.String("collection", collection), logging.Int("images", len(images)))...)
	return images, nil
}

// Export submits one export-to-storage task and returns the opaque handle the
// platform assigned. The task is started, never awaited; completion, retry,
// and failure tracking all live on the remote side.
func (c *Client) Export(ctx context.Context, req ExportRequest) (*Task, error) {
	endpoint := fmt.Sprintf("%s/v1/projects/%s/image:export", c.baseURL, c.project)

	body := exportBody{
		ImageName:   req.ImageName,
		BandIDs:     req.Bands,
		Description: req.Description,
		Region:      req.Region.GeoJSON(),
		Scale:       req.Scale,
		MaxPixels:   req.MaxPixels,
		CRS:         req.CRS,
		DriveDestination: driveDestination{
			Folder:         req.Folder,
			FilenamePrefix: req.NamePrefix,
		},
	}

	var task Task
	if err := c.post(ctx, endpoint, body, &task); err != nil {
		return nil, fmt.Errorf("export %s: %w", req.Description, err)
	}
	return &task, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call platform: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("platform returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode platform response: %w", err)
	}
	return nil
}
