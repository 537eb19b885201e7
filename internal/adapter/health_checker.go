package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	healthCheckPath = "/healthcheck"
	healthyBody     = "OK\n"

	defaultTimeout = 3 * time.Second
)

type HealthCheckerConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpHealthChecker struct {
	client *resty.Client
}

// NewHealthChecker constructs the HTTP implementation of [HealthChecker].
// BaseURL may omit the scheme, in which case http is assumed. A non-positive
// Timeout falls back to three seconds.
func NewHealthChecker(cfg HealthCheckerConfig) (HealthChecker, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpHealthChecker{client: client}, nil
}

func (h *httpHealthChecker) Check(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthCheckPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode())
	}
	if body := string(resp.Body()); body != healthyBody {
		return fmt.Errorf("%w: unexpected body %q", ErrUnhealthy, body)
	}

	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
