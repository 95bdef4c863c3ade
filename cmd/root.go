package cmd

import "github.com/spf13/cobra"

const (
	routeAnnotation       = "portal.route"
	skipRestoreAnnotation = "portal.skip-restore"
	jsonFlag              = "json"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portal",
		Short:         "Client portal CLI: projects, tasks, deliverables and more",
		Long:          "portal signs you in to the client portal backend, keeps the session across runs, and lets you browse and update projects, tasks, deliverables, notifications, users, the shop cart, stock alerts and sheet syncs from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().Bool(jsonFlag, false, "Print JSON instead of tables")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		app.enter(cmd)
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return app.shutdown(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newPasswordCmd(app),
		newDashboardCmd(app),
		newProjectsCmd(app),
		newTasksCmd(app),
		newDeliverablesCmd(app),
		newNotificationsCmd(app),
		newUsersCmd(app),
		newCartCmd(app),
		newAlertsCmd(app),
		newSheetsCmd(app),
	)

	return rootCmd
}

// enter points logs and hints at the command's stderr, records its route and restores the
// persisted session.
func (a *app) enter(cmd *cobra.Command) {
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.navigator.SetHintWriter(cmd.ErrOrStderr())
	a.navigator.Enter(annotation(cmd, routeAnnotation))

	if annotation(cmd, skipRestoreAnnotation) != "" {
		return
	}
	if _, err := a.session.Restore(cmd.Context()); err != nil {
		a.logger.WithError(err).Warn("could not restore session, continuing signed out")
	}
}

// annotation returns the closest value set on cmd or one of its parents.
func annotation(cmd *cobra.Command, key string) string {
	for c := cmd; c != nil; c = c.Parent() {
		if value, ok := c.Annotations[key]; ok {
			return value
		}
	}
	return ""
}

func route(path string) map[string]string {
	return map[string]string{routeAnnotation: path}
}
