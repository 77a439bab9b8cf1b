package probe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mikrus-labs/mikrus/internal/branding"
	"github.com/mikrus-labs/mikrus/internal/logging"
)

// DefaultTimeout bounds a single Check.
const DefaultTimeout = 5 * time.Second

// Status is the result of one Check.
type Status struct {
	Endpoint   string
	Reachable  bool
	StatusCode int // 0 when no response was received
	Latency    time.Duration
}

// Probe performs reachability checks against one endpoint.
type Probe struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Probe.
type Option func(*Probe)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(p *Probe) {
		p.httpClient = c
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Probe) {
		p.logger = l
	}
}

// New creates a Probe for endpoint. An empty endpoint falls back to the
// branded API URL.
func New(endpoint string, opts ...Option) *Probe {
	if endpoint == "" {
		endpoint = branding.APIURL()
	}
	p := &Probe{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	return p
}

// Endpoint returns the URL this probe checks.
func (p *Probe) Endpoint() string {
	return p.endpoint
}

// Check sends HEAD to the endpoint. Any 2xx or 3xx response counts as
// reachable; everything else, including transport errors, does not.
func (p *Probe) Check(ctx context.Context) Status {
	status := Status{Endpoint: p.endpoint}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.endpoint, nil)
	if err != nil {
		p.logger.Debug("API connectivity check failed", "endpoint", p.endpoint, "error", err)
		return status
	}
	// User-Agent carries no version.
	req.Header.Set("User-Agent", branding.UserAgent())

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	status.Latency = time.Since(start)
	if err != nil {
		p.logger.Debug("API connectivity check failed", "endpoint", p.endpoint, "error", err)
		return status
	}
	defer resp.Body.Close()

	status.StatusCode = resp.StatusCode
	status.Reachable = resp.StatusCode >= 200 && resp.StatusCode < 400
	p.logger.Debug("API connectivity check",
		"endpoint", p.endpoint,
		"status", resp.StatusCode,
		"latency", status.Latency)

	return status
}
