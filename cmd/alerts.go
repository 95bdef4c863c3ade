package cmd

import (
	"context"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/spf13/cobra"
)

func newAlertsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "alerts",
		Short:       "Review low-stock alerts",
		Annotations: route("/admin/inventory"),
	}

	cmd.AddCommand(
		newAlertsListCmd(app),
		newAlertsAckCmd(app),
	)

	return cmd
}

func newAlertsListCmd(app *app) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products running low",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := app.stores.Alerts
			err := fetch(cmd, "Fetching stock alerts", func(ctx context.Context) error {
				_, err := store.FetchLowStock(ctx, threshold)
				return err
			})
			if err != nil {
				return err
			}

			alerts := store.Snapshot().Items
			return writeView(cmd, app, listing.Alerts(alerts), alerts)
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "Stock level to alert at (0 uses the backend default)")

	return cmd
}

func newAlertsAckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ack <alert-id>",
		Short: "Acknowledge an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "alert")
			if err != nil {
				return err
			}
			if err := app.stores.Alerts.Acknowledge(cmd.Context(), id); err != nil {
				return err
			}
			return writeDone(cmd, "Alert %d acknowledged.", id)
		},
	}
}
