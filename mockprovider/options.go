package mockprovider

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/walletmock/config"
	"github.com/kbukum/walletmock/logger"
	"github.com/kbukum/walletmock/observability"
)

// Option configures a MockProvider.
type Option func(*MockProvider)

// WithLogger sets the logger used for request and deprecation messages.
func WithLogger(l *logger.Logger) Option {
	return func(p *MockProvider) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics records requests, events and deprecated calls into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *MockProvider) { p.metrics = m }
}

// WithTracerProvider creates request spans from tp instead of the global
// tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *MockProvider) {
		if tp != nil {
			p.tracer = tp.Tracer(observability.DefaultTracerName)
		}
	}
}

// WithInitialState replaces the default initial state.
func WithInitialState(s State) Option {
	return func(p *MockProvider) { p.state = s.clone() }
}

// WithStrictRequests makes Request reject malformed arguments, requests
// made while disconnected (4900) and requests naming a chain other than
// the current one (4901).
func WithStrictRequests() Option {
	return func(p *MockProvider) { p.strict = true }
}

// NewFromConfig creates a provider from a loaded provider configuration.
// Options are applied after the configuration.
func NewFromConfig(cfg *config.ProviderConfig, opts ...Option) (*MockProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mockprovider: provider config is nil")
	}
	c := *cfg
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	base := []Option{WithInitialState(stateFromConfig(&c))}
	if c.Strict {
		base = append(base, WithStrictRequests())
	}
	return New(append(base, opts...)...), nil
}

// NewFromAppConfig creates a provider from a loaded application
// configuration. The provider logs through a logger built from
// cfg.Logging under the service name cfg.Name. Options are applied after
// the configuration, so WithLogger still overrides it.
func NewFromAppConfig(cfg *config.Config, opts ...Option) (*MockProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mockprovider: config is nil")
	}
	c := *cfg
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(&c.Logging, c.Name).WithComponent("mockprovider")
	return NewFromConfig(&c.Provider, append([]Option{WithLogger(log)}, opts...)...)
}
