package cmd

import (
	"context"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "dashboard",
		Short:       "Summarise your projects, tasks, notifications and cart",
		Annotations: route("/dashboard"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			if err := fetchAll(cmd, "Loading dashboard", dashboardSteps(app, user)...); err != nil {
				return err
			}

			projects := app.stores.Projects.Snapshot().Items
			tasks := app.stores.Tasks.Snapshot().Items
			unread := app.stores.Notifications.UnreadCount()
			total := app.stores.Cart.Total()

			return writeView(cmd, app, listing.Dashboard(projects, tasks, unread, total), struct {
				Projects  []domain.Project `json:"projects"`
				Tasks     []domain.Task    `json:"tasks"`
				Unread    int              `json:"unread"`
				CartTotal float64          `json:"cartTotal"`
			}{Projects: projects, Tasks: tasks, Unread: unread, CartTotal: total})
		},
	}
}

// dashboardSteps lists the per-user collections behind the dashboard. Clients only see their own
// projects.
func dashboardSteps(app *app, user domain.User) []fetchStep {
	return []fetchStep{
		step("projects", func(ctx context.Context) error {
			if user.Role == domain.RoleClient {
				_, err := app.stores.Projects.FetchByClient(ctx, user.UserID)
				return err
			}
			_, err := app.stores.Projects.FetchAll(ctx)
			return err
		}),
		step("tasks", func(ctx context.Context) error {
			_, err := app.stores.Tasks.FetchByUser(ctx, user.UserID)
			return err
		}),
		step("notifications", func(ctx context.Context) error {
			_, err := app.stores.Notifications.RefreshUnreadCount(ctx, user.UserID)
			return err
		}),
		step("cart", func(ctx context.Context) error {
			_, err := app.stores.Cart.FetchForUser(ctx, user.UserID)
			return err
		}),
	}
}
