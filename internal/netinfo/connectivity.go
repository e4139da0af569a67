package netinfo

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lcars/internal/constants"
)

// Snapshot is the outcome of one connectivity check
type Snapshot struct {
	Connected    bool      `json:"connected"`
	DNSWorking   bool      `json:"dnsWorking"`
	HTTPSWorking bool      `json:"httpsWorking"`
	CheckedAt    time.Time `json:"checkedAt"`
	Error        string    `json:"error,omitempty"`
}

// Resolver is the DNS lookup used by the check. *net.Resolver satisfies it.
type Resolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// Checker probes DNS resolution and HTTPS reachability
type Checker struct {
	resolver  Resolver
	client    *resty.Client
	probeHost string
	probeURL  string
	timeout   time.Duration
	logger    *zap.Logger
}

// Option configures a Checker
type Option func(*Checker)

// WithResolver replaces the system resolver
func WithResolver(r Resolver) Option {
	return func(c *Checker) { c.resolver = r }
}

// WithHTTPClient sends the HTTPS probe through hc
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Checker) { c.client = resty.NewWithClient(hc) }
}

// WithProbeHost sets the name resolved by the DNS check
func WithProbeHost(host string) Option {
	return func(c *Checker) {
		if host != "" {
			c.probeHost = host
		}
	}
}

// WithProbeURL sets the URL fetched by the HTTPS check
func WithProbeURL(url string) Option {
	return func(c *Checker) {
		if url != "" {
			c.probeURL = url
		}
	}
}

// WithTimeout bounds each probe
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChecker creates a checker with the default probes
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		resolver:  net.DefaultResolver,
		client:    resty.New(),
		probeHost: constants.DefaultProbeHost,
		probeURL:  constants.DefaultProbeURL,
		timeout:   constants.DefaultProbeTimeout,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client.SetTimeout(c.timeout)
	return c
}

// CheckConnection runs the DNS and HTTPS probes concurrently. A probe
// that fails or times out is reported as not working; it is not an error.
func (c *Checker) CheckConnection(ctx context.Context) Snapshot {
	var s Snapshot
	var g errgroup.Group

	g.Go(func() error {
		s.DNSWorking = c.checkDNS(ctx)
		return nil
	})
	g.Go(func() error {
		s.HTTPSWorking = c.checkHTTPS(ctx)
		return nil
	})
	_ = g.Wait()

	s.Connected = s.DNSWorking || s.HTTPSWorking
	s.CheckedAt = time.Now()
	if err := ctx.Err(); err != nil {
		s.Error = err.Error()
	}
	return s
}

func (c *Checker) checkDNS(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ips, err := c.resolver.LookupIP(ctx, "ip4", c.probeHost)
	if err != nil {
		c.logger.Debug("dns probe failed", zap.String("host", c.probeHost), zap.Error(err))
		return false
	}
	return len(ips) > 0
}

func (c *Checker) checkHTTPS(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.R().SetContext(ctx).Get(c.probeURL)
	if err != nil {
		c.logger.Debug("https probe failed", zap.String("url", c.probeURL), zap.Error(err))
		return false
	}
	return resp.StatusCode() == http.StatusOK
}
