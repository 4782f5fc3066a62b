package synd

import (
	"time"

	"go.uber.org/zap"
)

// Option configures parse/write behavior.
type Option func(*Options)

// Options configures parse/write behavior.
type Options struct {
	// Registry supplies the known extension descriptors. Nil selects
	// DefaultRegistry.
	Registry *Registry

	// Logger receives best-effort diagnostics: skipped malformed extension
	// content, unparseable scalar fields, unexpected elements. Defaults to a
	// no-op logger.
	Logger *zap.Logger

	// ExtensionsEnabled controls whether extension discovery runs at all.
	// When false, Adapter.Fill is never invoked by the format loaders and
	// parsed entities carry no extensions.
	ExtensionsEnabled bool

	// Timeout bounds a Parse or Write call via a derived context deadline.
	// The tree walks themselves have no suspension points; the value is
	// forwarded, checked between phases.
	Timeout time.Duration

	// MaxDocumentBytes limits document size when parsing untrusted input.
	// Zero means unlimited.
	MaxDocumentBytes int64
}

func defaultOptions() Options {
	return Options{
		Logger:            zap.NewNop(),
		ExtensionsEnabled: true,
	}
}

// WithRegistry sets the extension registry used for discovery and prefix
// hints.
func WithRegistry(r *Registry) Option {
	return func(opts *Options) {
		opts.Registry = r
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithExtensionsEnabled toggles extension discovery.
func WithExtensionsEnabled(enabled bool) Option {
	return func(opts *Options) {
		opts.ExtensionsEnabled = enabled
	}
}

// WithTimeout bounds a Parse or Write call.
func WithTimeout(d time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = d
	}
}

// WithMaxDocumentBytes limits document size when parsing untrusted input.
func WithMaxDocumentBytes(maxBytes int64) Option {
	return func(opts *Options) {
		opts.MaxDocumentBytes = maxBytes
	}
}

func (o Options) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return DefaultRegistry()
}
