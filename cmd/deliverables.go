package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDeliverablesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "deliverables",
		Short:       "Browse, upload and approve deliverables",
		Annotations: route("/deliverables"),
	}

	cmd.AddCommand(
		newDeliverablesListCmd(app),
		newDeliverablesUploadCmd(app),
		newDeliverablesApproveCmd(app),
		newDeliverablesDeleteCmd(app),
	)

	return cmd
}

func newDeliverablesListCmd(app *app) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deliverables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := app.stores.Deliverables
			err := fetch(cmd, "Fetching deliverables", func(ctx context.Context) error {
				var err error
				if projectID > 0 {
					_, err = store.FetchByProject(ctx, projectID)
				} else {
					_, err = store.FetchAll(ctx)
				}
				return err
			})
			if err != nil {
				return err
			}

			deliverables := store.Snapshot().Items
			return writeView(cmd, app, listing.Deliverables(deliverables), deliverables)
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Only deliverables of this project id")

	return cmd
}

func newDeliverablesUploadCmd(app *app) *cobra.Command {
	var upload domain.DeliverableUpload

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file as a deliverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			file, err := os.Open(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("open deliverable: %w", err)
			}
			defer file.Close()

			upload.UploadedBy = user.UserID
			upload.FileName = filepath.Base(args[0])
			if upload.Title == "" {
				upload.Title = upload.FileName
			}

			deliverable, err := app.stores.Deliverables.Upload(cmd.Context(), upload, file)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Deliverables([]domain.Deliverable{deliverable}), deliverable)
		},
	}

	cmd.Flags().Int64Var(&upload.ProjectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&upload.Title, "title", "", "Title (defaults to the file name)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDeliverablesApproveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <deliverable-id>",
		Short: "Approve a deliverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "deliverable")
			if err != nil {
				return err
			}

			deliverable, err := app.stores.Deliverables.Approve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Deliverables([]domain.Deliverable{deliverable}), deliverable)
		},
	}
}

func newDeliverablesDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deliverable-id>",
		Short: "Delete a deliverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "deliverable")
			if err != nil {
				return err
			}
			if err := app.stores.Deliverables.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return writeDone(cmd, "Deliverable %d deleted.", id)
		},
	}
}
