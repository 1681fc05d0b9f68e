package order

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

// Dispatcher runs the single-stage notification pipeline: extract the
// order info, resolve every requested channel, send, and record history.
type Dispatcher struct {
	channels *registry.Registry[Channel]
	history  *history.Store
	logger   *slog.Logger
	now      func() time.Time
}

// NewDispatcher wires a dispatcher against the given channel registry and
// history store.
func NewDispatcher(channels *registry.Registry[Channel], store *history.Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{
		channels: channels,
		history:  store,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the dispatcher's time source. Intended for tests.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// Dispatch extracts the order from raw and sends one notification per
// channel key, in the order given. Every channel strategy is resolved
// before the first send, so an unknown key aborts the dispatch without
// any notification going out or any history being written. The appended
// history records are returned in send order.
func (d *Dispatcher) Dispatch(ctx context.Context, raw record.Record, channelKeys []string) ([]history.Record, error) {
	info, err := Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extract order: %w", err)
	}

	resolved := make([]Channel, 0, len(channelKeys))
	for _, key := range channelKeys {
		channel, err := d.channels.Create(key)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, channel)
	}

	d.logger.InfoContext(ctx, "processing order",
		logging.FieldComponent, "dispatcher",
		logging.FieldOrderID, info.OrderID,
		"customer", info.Name,
		"total", info.Total,
	)

	records := make([]history.Record, 0, len(resolved))
	for i, channel := range resolved {
		rec, err := channel.Send(ctx, info, d.now().UTC())
		if err != nil {
			return records, fmt.Errorf("send %s notification: %w", channelKeys[i], err)
		}
		appended, err := d.history.Append(ctx, rec)
		if err != nil {
			return records, fmt.Errorf("record %s notification: %w", channelKeys[i], err)
		}
		records = append(records, appended)
	}
	return records, nil
}
