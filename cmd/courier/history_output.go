package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"courier/internal/history"
	"courier/internal/textutil"
)

var historyHeaders = []string{"Kind", "Target", "Format", "Delivery", "Message", "Timestamp"}

// historyView is the JSON shape of one history record.
type historyView struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Target    string `json:"target"`
	Message   string `json:"message,omitempty"`
	Format    string `json:"format,omitempty"`
	Delivery  string `json:"delivery,omitempty"`
	Timestamp string `json:"timestamp"`
}

func historyRows(records []history.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			textutil.Label(rec.Kind),
			rec.Target,
			rec.Format,
			rec.Delivery,
			truncate(rec.Message, 48),
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows
}

func writeHistory(out io.Writer, records []history.Record, asJSON bool) error {
	if asJSON {
		views := make([]historyView, 0, len(records))
		for _, rec := range records {
			views = append(views, historyView{
				ID:        rec.ID,
				Kind:      rec.Kind,
				Target:    rec.Target,
				Message:   rec.Message,
				Format:    rec.Format,
				Delivery:  rec.Delivery,
				Timestamp: rec.CreatedAt.Format(time.RFC3339),
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views)
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "History is empty.")
		return err
	}
	_, err := fmt.Fprintln(out, renderTable(historyHeaders, historyRows(records)))
	return err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
