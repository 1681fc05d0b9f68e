package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var formatKey string
	var deliveryKey string
	var showHistory bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "report <kind> <data.json>",
		Short: "Generate, format, and deliver a business report",
		Long: `Generate a report from a JSON data record, wrap it in an output
format, and hand it to a delivery method.

Known kinds: sales, inventory, financial. Known formats: pdf, excel,
html. Known deliveries: email, download, cloud.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime()
			if err != nil {
				return err
			}

			data, err := readRecord(args[1])
			if err != nil {
				return err
			}

			format := strings.TrimSpace(formatKey)
			if format == "" {
				format = rt.cfg.Report.Format
			}
			delivery := strings.TrimSpace(deliveryKey)
			if delivery == "" {
				delivery = rt.cfg.Report.Delivery
			}

			formatted, err := rt.pipeline.Run(cmd.Context(), args[0], data, format, delivery)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatted)

			if showHistory {
				all, err := rt.store.All(cmd.Context())
				if err != nil {
					return err
				}
				return writeHistory(out, all, jsonOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatKey, "format", "f", "", "Output format (defaults to report.format from config)")
	cmd.Flags().StringVarP(&deliveryKey, "delivery", "d", "", "Delivery method (defaults to report.delivery from config)")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Print the report history after the run")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Render history as JSON instead of a table")
	return cmd
}
