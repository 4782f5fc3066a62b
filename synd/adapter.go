package synd

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Adapter discovers which registered extensions a document declares and
// attaches parsed extension values to feed entities.
type Adapter struct {
	registry *Registry
	logger   *zap.Logger
}

// NewAdapter creates an adapter over the given registry. A nil registry
// selects DefaultRegistry.
func NewAdapter(registry *Registry, opts ...Option) *Adapter {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Adapter{registry: registry, logger: options.Logger}
}

// Fill attaches to entity one parsed extension value for every registered
// descriptor whose namespace appears in ambient and whose content is present
// under el.
//
// Descriptors are tried in registration order, which is also the attach
// order: a deterministic tie-break, not an XML-source-order guarantee.
// Namespaces in ambient with no registered descriptor are ignored, so
// unknown vendor extensions never cause a failure. A descriptor whose
// namespace is absent from ambient is never invoked, even if matching
// element names are physically present under el.
//
// Fill mutates entity in place and performs no deduplication: calling it
// twice with the same node attaches duplicates.
func (a *Adapter) Fill(entity ExtensibleEntity, el *etree.Element, ambient NamespaceSet) {
	if entity == nil {
		panic("synd: Fill called with nil entity")
	}
	if el == nil {
		panic("synd: Fill called with nil element")
	}
	for _, d := range a.registry.Descriptors() {
		if !ambient.Contains(d.Namespace) {
			continue
		}
		ext := d.New()
		if ext == nil {
			a.logger.Warn("extension factory returned nil, skipping",
				zap.String("namespace", d.Namespace), zap.String("module", d.Name))
			continue
		}
		if aware, ok := ext.(loggerAware); ok {
			aware.setLogger(a.logger)
		}
		if a.safeParse(ext, el, d) {
			entity.AddExtension(ext)
		}
	}
}

// safeParse invokes ext.Parse, converting a panic inside one extension into
// "no match" so a malformed module never aborts the overall document parse.
func (a *Adapter) safeParse(ext Extension, el *etree.Element, d Descriptor) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			found = false
			a.logger.Warn("extension parse failed, skipping",
				zap.String("namespace", d.Namespace),
				zap.String("module", d.Name),
				zap.Any("cause", r))
		}
	}()
	return ext.Parse(el)
}

// loggerAware lets the adapter hand its logger to extension instances that
// emit best-effort field diagnostics.
type loggerAware interface {
	setLogger(*zap.Logger)
}
