// Package history keeps the append-only log of completed notification and
// report operations. Records are immutable once appended; the store lives
// in process memory only and is discarded when the process exits.
package history

import "time"

// Record describes one completed operation. Kind holds the notification
// channel or report kind; Format and Delivery are empty for notifications,
// Message is empty for reports.
type Record struct {
	ID        string
	Kind      string
	Target    string
	Message   string
	Format    string
	Delivery  string
	CreatedAt time.Time
}
