package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
)

// Client fetches tracked-hours facts from the time tracker.
type Client interface {
	// FetchTrackedHours returns all facts whose month falls in rng.
	FetchTrackedHours(ctx context.Context, rng domain.PeriodRange) ([]*domain.TrackedHours, error)

	// Available checks whether the tracker service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the tracker's JSON API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured tracker endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// trackedHoursEntry is one JSON record returned by GET /api/tracked-hours.
type trackedHoursEntry struct {
	ResourceID string  `json:"resource_id"`
	ProjectID  string  `json:"project_id"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Hours      float64 `json:"hours"`
}

type trackedHoursPayload struct {
	Entries []trackedHoursEntry `json:"entries"`
}

func (c *httpClient) FetchTrackedHours(ctx context.Context, rng domain.PeriodRange) ([]*domain.TrackedHours, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		payload, err := c.doFetch(ctx, rng)
		if err == nil {
			facts := make([]*domain.TrackedHours, 0, len(payload.Entries))
			syncedAt := time.Now().UTC()
			for _, e := range payload.Entries {
				facts = append(facts, &domain.TrackedHours{
					ResourceID:  e.ResourceID,
					ProjectID:   e.ProjectID,
					Period:      domain.Period{Year: e.Year, Month: e.Month},
					ActualHours: e.Hours,
					SyncedAt:    syncedAt,
				})
			}
			c.observer.OnCallComplete(CallEvent{
				Operation: "fetch_tracked_hours",
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return facts, nil
		}
		lastErr = err

		// Don't retry on auth rejection or context cancellation/timeout
		if errors.Is(err, ErrUnauthorized) || ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Operation: "fetch_tracked_hours",
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr, ctx),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if errors.Is(lastErr, ErrUnauthorized) {
		return nil, lastErr
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpClient) doFetch(ctx context.Context, rng domain.PeriodRange) (*trackedHoursPayload, error) {
	q := url.Values{}
	q.Set("from", rng.From.String())
	q.Set("to", rng.To.String())
	endpoint := c.cfg.Endpoint + "/api/tracked-hours?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case httpResp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("tracker returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var payload trackedHoursPayload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &payload, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	endpoint := c.cfg.Endpoint + "/api/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error, ctx context.Context) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
