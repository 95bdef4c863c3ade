package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "notifications",
		Short:       "Read your notifications",
		Annotations: route("/notifications"),
	}

	cmd.AddCommand(
		newNotificationsListCmd(app),
		newNotificationsUnreadCmd(app),
		newNotificationsReadCmd(app),
		newNotificationsReadAllCmd(app),
	)

	return cmd
}

func newNotificationsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your notifications, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			store := app.stores.Notifications
			err = fetchAll(cmd, "Fetching notifications",
				step("notifications", func(ctx context.Context) error {
					_, err := store.FetchForUser(ctx, user.UserID)
					return err
				}),
				step("unread count", func(ctx context.Context) error {
					_, err := store.RefreshUnreadCount(ctx, user.UserID)
					return err
				}),
			)
			if err != nil {
				return err
			}

			notifications := store.Snapshot().Items
			return writeView(cmd, app, listing.Notifications(notifications, store.UnreadCount()), notifications)
		},
	}
}

func newNotificationsUnreadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unread",
		Short: "Print the number of unread notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			count, err := app.stores.Notifications.RefreshUnreadCount(cmd.Context(), user.UserID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}
}

func newNotificationsReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "notification")
			if err != nil {
				return err
			}
			if err := app.stores.Notifications.MarkRead(cmd.Context(), id); err != nil {
				return err
			}
			return writeDone(cmd, "Notification %d marked as read.", id)
		},
	}
}

func newNotificationsReadAllCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark all your notifications as read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}
			if err := app.stores.Notifications.MarkAllRead(cmd.Context(), user.UserID); err != nil {
				return err
			}
			return writeDone(cmd, "All notifications marked as read.")
		},
	}
}
