package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotifyCommand(ctx *commandContext) *cobra.Command {
	var channels []string
	var showHistory bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "notify <order.json>",
		Short: "Dispatch order confirmation notifications",
		Long: `Dispatch an order confirmation over one or more channels.

The order file is a JSON record with order_id, total, and a customer
object holding name, email, phone, and device_id. Known channels:
email, sms, push.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime()
			if err != nil {
				return err
			}

			raw, err := readRecord(args[0])
			if err != nil {
				return err
			}

			keys := channels
			if len(keys) == 0 {
				keys = rt.cfg.Notify.Channels
			}

			records, err := rt.dispatcher.Dispatch(cmd.Context(), raw, keys)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sent %d notification(s)\n", len(records))

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

	cmd.Flags().StringSliceVar(&channels, "channel", nil, "Notification channel (repeatable; defaults to notify.channels from config)")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Print the notification history after dispatch")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Render history as JSON instead of a table")
	return cmd
}
