package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"courier/internal/record"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run both pipelines against sample data and print the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime()
			if err != nil {
				return err
			}

			for _, d := range demoOrders {
				if _, err := rt.dispatcher.Dispatch(cmd.Context(), d.order, d.channels); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, d := range demoReports {
				formatted, err := rt.pipeline.Run(cmd.Context(), d.kind, d.data, d.format, d.delivery)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatted)
			}

			all, err := rt.store.All(cmd.Context())
			if err != nil {
				return err
			}
			return writeHistory(out, all, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Render history as JSON instead of a table")
	return cmd
}

var demoOrders = []struct {
	order    record.Record
	channels []string
}{
	{
		order: record.Record{
			"order_id": "ORD-001",
			"customer": map[string]any{
				"name":      "Ana García",
				"email":     "ana.garcia@email.com",
				"phone":     "+34-600-123-456",
				"device_id": "DEVICE-ABC-123",
			},
			"total": 150.50,
		},
		channels: []string{"email", "sms", "push"},
	},
	{
		order: record.Record{
			"order_id": "ORD-002",
			"customer": map[string]any{
				"name":      "Carlos Ruiz",
				"email":     "carlos.ruiz@email.com",
				"phone":     "+34-600-789-012",
				"device_id": "DEVICE-XYZ-789",
			},
			"total": 75.00,
		},
		channels: []string{"email"},
	},
}

var demoReports = []struct {
	kind     string
	data     record.Record
	format   string
	delivery string
}{
	{
		kind: "sales",
		data: record.Record{
			"period": "Enero 2024",
			"sales": []any{
				map[string]any{"product": "Laptop HP", "amount": 899.99},
				map[string]any{"product": "Mouse Logitech", "amount": 25.50},
				map[string]any{"product": "Teclado Mecánico", "amount": 120.00},
				map[string]any{"product": `Monitor LG 24"`, "amount": 199.99},
			},
		},
		format:   "pdf",
		delivery: "email",
	},
	{
		kind: "inventory",
		data: record.Record{
			"items": []any{
				map[string]any{"name": "Laptop HP", "category": "Computadoras", "quantity": 15.0},
				map[string]any{"name": "Mouse Logitech", "category": "Accesorios", "quantity": 50.0},
				map[string]any{"name": "Teclado Mecánico", "category": "Accesorios", "quantity": 30.0},
				map[string]any{"name": "Monitor LG", "category": "Pantallas", "quantity": 20.0},
			},
		},
		format:   "excel",
		delivery: "download",
	},
	{
		kind: "financial",
		data: record.Record{
			"income":   50000.00,
			"expenses": 32000.00,
		},
		format:   "html",
		delivery: "cloud",
	},
}
