package cmd

import (
	"context"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSheetsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "sheets",
		Short:       "Read spreadsheet rows and trigger syncs",
		Annotations: route("/admin/sheets"),
	}

	cmd.AddCommand(
		newSheetsRowsCmd(app),
		newSheetsSyncCmd(app),
		newSheetsStatusCmd(app),
	)

	return cmd
}

func newSheetsRowsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rows <sheet>",
		Short: "Print the rows of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := app.stores.Sheets
			err := fetch(cmd, "Fetching sheet rows", func(ctx context.Context) error {
				_, err := store.FetchRows(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			rows := store.Snapshot().Items
			return writeView(cmd, app, listing.SheetRows(args[0], rows), sheetRowsJSON(rows))
		},
	}
}

func newSheetsSyncCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <resource>",
		Short: "Push a resource (projects, tasks, ...) to its sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result domain.SyncResult
			err := fetch(cmd, "Syncing "+args[0], func(ctx context.Context) error {
				var err error
				result, err = app.stores.Sheets.Sync(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.SyncResult(result), result)
		},
	}
}

func newSheetsStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the last sheet sync",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.stores.Sheets.Status(cmd.Context())
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.SyncResult(result), result)
		},
	}
}

// sheetRowsJSON turns typed cells back into plain JSON values.
func sheetRowsJSON(rows []domain.SheetRow) [][]any {
	out := make([][]any, 0, len(rows))
	for _, row := range rows {
		values := make([]any, 0, len(row.Cells))
		for _, cell := range row.Cells {
			switch cell.Kind {
			case domain.CellText:
				values = append(values, cell.Text)
			case domain.CellNumber:
				values = append(values, cell.Number)
			case domain.CellBool:
				values = append(values, cell.Bool)
			default:
				values = append(values, nil)
			}
		}
		out = append(out, values)
	}
	return out
}
