// Package order implements the multi-channel order notification flow:
// value-object extraction of the incoming order record, one strategy per
// notification channel, and the dispatcher that fans an order out over a
// channel list while recording history.
package order

import (
	"strconv"

	"courier/internal/record"
)

// Info is the immutable snapshot of the order fields every channel needs.
// It is built once per dispatch and discarded afterwards.
type Info struct {
	OrderID string
	Total   float64
	Name    string
	Email   string
	Phone   string
	Device  string
}

// Extract reads the required order fields out of a loosely-typed record.
// It fails on the first missing field and never returns a partial Info.
func Extract(raw record.Record) (Info, error) {
	var info Info
	var err error

	if info.OrderID, err = raw.String("order_id"); err != nil {
		return Info{}, err
	}
	if info.Total, err = raw.Float("total"); err != nil {
		return Info{}, err
	}
	if info.Name, err = raw.String("customer.name"); err != nil {
		return Info{}, err
	}
	if info.Email, err = raw.String("customer.email"); err != nil {
		return Info{}, err
	}
	if info.Phone, err = raw.String("customer.phone"); err != nil {
		return Info{}, err
	}
	if info.Device, err = raw.String("customer.device_id"); err != nil {
		return Info{}, err
	}
	return info, nil
}

// formatAmount renders a monetary amount with the minimal digits needed,
// matching how order totals appear in confirmation messages.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
