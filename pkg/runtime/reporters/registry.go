package reporters

import (
	"fmt"
	"io"
	"sync"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

// Reporter renders the three aggregate views into one output format.
type Reporter interface {
	MonthlyReport(report domain.MonthlyReport) error
	ProductReport(report domain.ProductReport) error
	WeeklyReport(report domain.WeeklyReport) error
}

// Options carry per-run rendering configuration.
type Options struct {
	Locale string
}

// Factory creates a reporter writing to w.
type Factory func(w io.Writer, opts Options) Reporter

// Registry manages reporter factories keyed by format name.
type Registry interface {
	// Register adds a factory for a format name
	Register(format string, factory Factory) error
	// Create instantiates a reporter for the format, writing to w
	Create(format string, w io.Writer, opts Options) (Reporter, error)
	// ListFormats returns the registered format names
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty reporter registry.
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

func (r *registry) Register(format string, factory Factory) error {
	if format == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.factories[format] = factory
	return nil
}

func (r *registry) Create(format string, w io.Writer, opts Options) (Reporter, error) {
	r.mu.RLock()
	factory, exists := r.factories[format]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("format %q is not registered", format)
	}

	return factory(w, opts), nil
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	return formats
}
