package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/healthdash/internal/analyze"
	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/pkg"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultClientTimeout = 30 * time.Second

// Client talks to the healthdash API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultClientTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) FetchOura(ctx context.Context) ([]healthdata.OuraRecord, error) {
	var records []healthdata.OuraRecord
	if err := c.get(ctx, "/api/oura", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) FetchWithings(ctx context.Context) ([]healthdata.WithingsRecord, error) {
	var records []healthdata.WithingsRecord
	if err := c.get(ctx, "/api/withings", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) FetchRunning(ctx context.Context) ([]healthdata.RunningRecord, error) {
	var records []healthdata.RunningRecord
	if err := c.get(ctx, "/api/running", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Analyze(ctx context.Context, analyzeReq analyze.Request) (*analyze.Analysis, error) {
	body, err := json.Marshal(analyzeReq)
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", pkg.ContentType.JSON)

	var analysis analyze.Analysis
	if err := c.do(req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request %s: %w", path, err)
	}
	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp pkg.ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			if errResp.Details != "" {
				return fmt.Errorf("%s %s: status %d: %s: %s", req.Method, req.URL.Path, resp.StatusCode, errResp.Error, errResp.Details)
			}
			return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", req.URL.Path, err)
	}
	return nil
}
