package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"courier/internal/config"
	"courier/internal/logging"
	"courier/internal/registry"
)

// Known delivery method keys.
const (
	DeliveryEmail    = "email"
	DeliveryDownload = "download"
	DeliveryCloud    = "cloud"
)

// Document is a formatted report handed to a delivery method.
type Document struct {
	Content     string
	Kind        string
	Format      string
	GeneratedAt time.Time
}

// Receipt describes where a delivery placed the report.
type Receipt struct {
	Target string
}

// Delivery hands a formatted report to its destination. This is the only
// pipeline stage permitted side effects beyond logging; all transports
// here are simulated as log events.
type Delivery interface {
	Deliver(ctx context.Context, doc Document) (Receipt, error)
}

// NewDeliveryRegistry builds the registry of delivery methods. Recipient
// and cloud base URL come from config and are captured at registration so
// delivery factories stay zero-argument.
func NewDeliveryRegistry(cfg config.Report, logger *slog.Logger) *registry.Registry[Delivery] {
	if logger == nil {
		logger = logging.NewNop()
	}
	deliveries := registry.New[Delivery]("delivery")
	deliveries.Register(DeliveryEmail, func() Delivery {
		return emailDelivery{recipient: cfg.Recipient, logger: logger}
	})
	deliveries.Register(DeliveryDownload, func() Delivery {
		return downloadDelivery{logger: logger}
	})
	deliveries.Register(DeliveryCloud, func() Delivery {
		return cloudDelivery{baseURL: cfg.CloudBaseURL, logger: logger}
	})
	return deliveries
}

type emailDelivery struct {
	recipient string
	logger    *slog.Logger
}

func (d emailDelivery) Deliver(ctx context.Context, doc Document) (Receipt, error) {
	d.logger.InfoContext(ctx, "report emailed",
		logging.FieldDelivery, DeliveryEmail,
		logging.FieldTarget, d.recipient,
	)
	return Receipt{Target: d.recipient}, nil
}

type downloadDelivery struct {
	logger *slog.Logger
}

func (d downloadDelivery) Deliver(ctx context.Context, doc Document) (Receipt, error) {
	filename := fmt.Sprintf("report_%s_%s.%s",
		doc.Kind, doc.GeneratedAt.Format("20060102_150405"), doc.Format)
	d.logger.InfoContext(ctx, "report available for download",
		logging.FieldDelivery, DeliveryDownload,
		logging.FieldTarget, filename,
	)
	return Receipt{Target: filename}, nil
}

type cloudDelivery struct {
	baseURL string
	logger  *slog.Logger
}

func (d cloudDelivery) Deliver(ctx context.Context, doc Document) (Receipt, error) {
	url := strings.TrimRight(d.baseURL, "/") + "/" + doc.Kind
	d.logger.InfoContext(ctx, "report uploaded to cloud",
		logging.FieldDelivery, DeliveryCloud,
		logging.FieldTarget, url,
	)
	return Receipt{Target: url}, nil
}
