package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/growth-tools/goal-report/pkg/models/api"
	"github.com/growth-tools/goal-report/pkg/models/domain"
	"github.com/growth-tools/goal-report/pkg/services/config"
)

// QueryError is a non-success response from the stats backend. Any query
// failure aborts the whole report run.
type QueryError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("stats %s query failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client queries the stats backend's aggregate and breakdown endpoints for
// one site.
type Client struct {
	httpc      *http.Client
	baseURL    string
	apiVersion string
	apiKey     string
	siteID     string
	period     string
}

func NewClient(cfg *config.Config, timeout time.Duration) *Client {
	return &Client{
		httpc:      &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		apiKey:     cfg.APIKey,
		siteID:     cfg.SiteID,
		period:     cfg.Period,
	}
}

// Aggregate runs a site- or page-wide query returning one value per metric.
// Metrics absent from the response count as zero.
func (c *Client) Aggregate(
	ctx context.Context,
	window domain.DateRange,
	metrics []string,
	filters string,
) (map[string]int, error) {
	var resp api.AggregateResponse
	if err := c.get(ctx, "aggregate", window, metrics, filters, "", &resp); err != nil {
		return nil, err
	}

	values := make(map[string]int, len(metrics))
	for _, m := range metrics {
		values[m] = int(resp.Results[m].Value)
	}
	return values, nil
}

// Breakdown runs a per-goal query returning one row per goal seen in the
// window. Goals with no matching events are simply absent.
func (c *Client) Breakdown(
	ctx context.Context,
	window domain.DateRange,
	metrics []string,
	filters string,
) ([]domain.GoalMetrics, error) {
	var resp api.BreakdownResponse
	if err := c.get(ctx, "breakdown", window, metrics, filters, "event:goal", &resp); err != nil {
		return nil, err
	}

	rows := make([]domain.GoalMetrics, 0, len(resp.Results))
	for _, r := range resp.Results {
		rows = append(rows, domain.GoalMetrics{
			Goal:     r.GoalName(),
			Visitors: r.Visitors,
			Events:   r.Events,
		})
	}
	return rows, nil
}

func (c *Client) get(
	ctx context.Context,
	endpoint string,
	window domain.DateRange,
	metrics []string,
	filters string,
	property string,
	out interface{},
) error {
	params := url.Values{}
	params.Set("site_id", c.siteID)
	params.Set("period", c.period)
	params.Set("date", window.String())
	params.Set("metrics", strings.Join(metrics, ","))
	if property != "" {
		params.Set("property", property)
	}
	if filters != "" {
		params.Set("filters", filters)
	}

	reqURL := fmt.Sprintf("%s%s/%s?%s", c.baseURL, c.apiVersion, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		queriesTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("stats %s query failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	queriesTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &QueryError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
