package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courier/internal/history"
	"courier/internal/logging"
	"courier/internal/record"
	"courier/internal/registry"
)

// Pipeline orchestrates the three report stages in order: generate,
// format, deliver. Each stage is a strategy resolved by key from its own
// registry; one history record is appended per completed run.
type Pipeline struct {
	templates  *registry.Registry[Template]
	formats    *registry.Registry[Format]
	deliveries *registry.Registry[Delivery]
	history    *history.Store
	logger     *slog.Logger
	now        func() time.Time
}

// NewPipeline wires a pipeline against the given registries and history store.
func NewPipeline(
	templates *registry.Registry[Template],
	formats *registry.Registry[Format],
	deliveries *registry.Registry[Delivery],
	store *history.Store,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		templates:  templates,
		formats:    formats,
		deliveries: deliveries,
		history:    store,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the pipeline's time source. Intended for tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run generates the report identified by kind from data, applies the
// format, and hands the result to the delivery method. All three
// strategies are resolved before the first stage runs, so an unknown key
// aborts the run before any side effect. The formatted report is returned
// and one history record is appended on success.
func (p *Pipeline) Run(ctx context.Context, kind string, data record.Record, formatKey, deliveryKey string) (string, error) {
	template, err := p.templates.Create(kind)
	if err != nil {
		return "", err
	}
	format, err := p.formats.Create(formatKey)
	if err != nil {
		return "", err
	}
	delivery, err := p.deliveries.Create(deliveryKey)
	if err != nil {
		return "", err
	}

	at := p.now()

	content, err := Generate(template, data, at)
	if err != nil {
		return "", fmt.Errorf("generate %s report: %w", kind, err)
	}

	formatted := format.Apply(content)

	receipt, err := delivery.Deliver(ctx, Document{
		Content:     formatted,
		Kind:        kind,
		Format:      formatKey,
		GeneratedAt: at,
	})
	if err != nil {
		return "", fmt.Errorf("deliver %s report: %w", kind, err)
	}

	if _, err := p.history.Append(ctx, history.Record{
		Kind:      kind,
		Target:    receipt.Target,
		Format:    formatKey,
		Delivery:  deliveryKey,
		CreatedAt: at.UTC(),
	}); err != nil {
		return "", fmt.Errorf("record %s report: %w", kind, err)
	}

	p.logger.InfoContext(ctx, "report generated",
		logging.FieldComponent, "pipeline",
		logging.FieldReportKind, kind,
		logging.FieldFormat, formatKey,
		logging.FieldDelivery, deliveryKey,
	)
	return formatted, nil
}
