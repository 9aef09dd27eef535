package lattice

import (
	"io"
	"log/slog"

	"github.com/aretw0/lattice/pkg/schema"
)

// Model is the high-level entry point for the lattice library.
// It binds a compiled schema to a structured logger and provides a
// simplified API for consumers.
type Model struct {
	schema *schema.Schema
	logger *slog.Logger
}

// Option defines a functional option for configuring a Model.
type Option func(*Model)

// WithLogger sets a custom structured logger for the model.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New wraps a compiled schema.
func New(s *schema.Schema, opts ...Option) *Model {
	m := &Model{schema: s}

	for _, opt := range opts {
		opt(m)
	}

	// Ensure logger is initialized so validation never has to nil-check.
	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m.logger = m.logger.With("schema", s.Name())

	return m
}

// Schema returns the underlying schema.
func (m *Model) Schema() *schema.Schema { return m.schema }

// Validate checks a raw record against the model's schema and logs the
// outcome. The returned error, when non-nil, is a schema.ErrorList with
// every failure found.
func (m *Model) Validate(raw map[string]any) (*schema.Instance, error) {
	inst, err := m.schema.Validate(raw)
	if err != nil {
		m.logger.Warn("validation failed", "errors", len(schema.Errors(err)))
		return nil, err
	}

	m.logger.Debug("validation succeeded")
	return inst, nil
}
