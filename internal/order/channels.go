package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courier/internal/history"
	"courier/internal/logging"
	"courier/internal/registry"
)

// Known notification channel keys.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

// Channel sends one order confirmation over a single medium and produces
// the history record describing the send. Implementations are stateless
// across invocations; the timestamp is supplied by the dispatcher.
type Channel interface {
	Send(ctx context.Context, info Info, at time.Time) (history.Record, error)
}

// NewChannelRegistry builds the registry of notification channels. The
// logger is captured at registration so channel factories stay
// zero-argument.
func NewChannelRegistry(logger *slog.Logger) *registry.Registry[Channel] {
	if logger == nil {
		logger = logging.NewNop()
	}
	channels := registry.New[Channel]("notification channel")
	channels.Register(ChannelEmail, func() Channel { return emailChannel{logger: logger} })
	channels.Register(ChannelSMS, func() Channel { return smsChannel{logger: logger} })
	channels.Register(ChannelPush, func() Channel { return pushChannel{logger: logger} })
	return channels
}

type emailChannel struct {
	logger *slog.Logger
}

func (c emailChannel) Send(ctx context.Context, info Info, at time.Time) (history.Record, error) {
	message := fmt.Sprintf("Estimado %s, su pedido #%s por $%s ha sido confirmado.",
		info.Name, info.OrderID, formatAmount(info.Total))
	c.logger.InfoContext(ctx, "email sent",
		logging.FieldChannel, ChannelEmail,
		logging.FieldTarget, info.Email,
		"subject", "Confirmación de Pedido #"+info.OrderID,
	)
	return history.Record{
		Kind:      ChannelEmail,
		Target:    info.Email,
		Message:   message,
		CreatedAt: at,
	}, nil
}

type smsChannel struct {
	logger *slog.Logger
}

func (c smsChannel) Send(ctx context.Context, info Info, at time.Time) (history.Record, error) {
	message := fmt.Sprintf("Pedido #%s confirmado. Total: $%s. Gracias por su compra!",
		info.OrderID, formatAmount(info.Total))
	c.logger.InfoContext(ctx, "sms sent",
		logging.FieldChannel, ChannelSMS,
		logging.FieldTarget, info.Phone,
	)
	return history.Record{
		Kind:      ChannelSMS,
		Target:    info.Phone,
		Message:   message,
		CreatedAt: at,
	}, nil
}

type pushChannel struct {
	logger *slog.Logger
}

func (c pushChannel) Send(ctx context.Context, info Info, at time.Time) (history.Record, error) {
	message := fmt.Sprintf("¡Pedido confirmado! #%s - $%s", info.OrderID, formatAmount(info.Total))
	c.logger.InfoContext(ctx, "push sent",
		logging.FieldChannel, ChannelPush,
		logging.FieldTarget, info.Device,
	)
	return history.Record{
		Kind:      ChannelPush,
		Target:    info.Device,
		Message:   message,
		CreatedAt: at,
	}, nil
}
