package cmd

import (
	"context"
	"strconv"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "projects",
		Short:       "Browse and update projects",
		Annotations: route("/projects"),
	}

	cmd.AddCommand(
		newProjectsListCmd(app),
		newProjectsShowCmd(app),
		newProjectsCreateCmd(app),
		newProjectsStatusCmd(app),
		newProjectsProgressCmd(app),
	)

	return cmd
}

func newProjectsListCmd(app *app) *cobra.Command {
	var clientID int64
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mine {
				user, err := requireUser(app)
				if err != nil {
					return err
				}
				clientID = user.UserID
			}

			store := app.stores.Projects
			err := fetch(cmd, "Fetching projects", func(ctx context.Context) error {
				var err error
				if clientID > 0 {
					_, err = store.FetchByClient(ctx, clientID)
				} else {
					_, err = store.FetchAll(ctx)
				}
				return err
			})
			if err != nil {
				return err
			}

			projects := store.Snapshot().Items
			return writeView(cmd, app, listing.Projects(projects), projects)
		},
	}

	cmd.Flags().Int64Var(&clientID, "client", 0, "Only projects of this client id")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only your own projects")

	return cmd
}

func newProjectsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			var project domain.Project
			err = fetchAll(cmd, "Fetching project",
				step("project", func(ctx context.Context) error {
					var err error
					project, err = app.stores.Projects.FetchOne(ctx, id)
					return err
				}),
				step("tasks", func(ctx context.Context) error {
					_, err := app.stores.Tasks.FetchByProject(ctx, id)
					return err
				}),
			)
			if err != nil {
				return err
			}

			tasks := app.stores.Tasks.Snapshot().Items
			return writePage(cmd, app, struct {
				Project domain.Project `json:"project"`
				Tasks   []domain.Task  `json:"tasks"`
			}{Project: project, Tasks: tasks}, listing.Project(project), listing.Tasks(tasks))
		},
	}
}

func newProjectsCreateCmd(app *app) *cobra.Command {
	var project domain.NewProject
	var start string
	var due string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if project.StartDate, err = parseDate(start); err != nil {
				return err
			}
			if project.DueDate, err = parseDate(due); err != nil {
				return err
			}
			if project.ClientID == 0 {
				user, err := requireUser(app)
				if err != nil {
					return err
				}
				project.ClientID = user.UserID
			}

			created, err := app.stores.Projects.Create(cmd.Context(), project)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Project(created), created)
		},
	}

	cmd.Flags().StringVar(&project.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&project.Description, "description", "", "Project description")
	cmd.Flags().Int64Var(&project.ClientID, "client", 0, "Client user id (defaults to you)")
	cmd.Flags().StringVar(&start, "start", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectsStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <project-id> <status>",
		Short: "Set a project's status (planning, in-progress, on-hold, completed, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			status, err := domain.ParseProjectStatus(args[1])
			if err != nil {
				return err
			}

			project, err := app.stores.Projects.UpdateStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Project(project), project)
		},
	}
}

func newProjectsProgressCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <project-id> <percent>",
		Short: "Set a project's progress from 0 to 100",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			progress, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			if err := domain.ValidateProgress(progress); err != nil {
				return err
			}

			project, err := app.stores.Projects.UpdateProgress(cmd.Context(), id, progress)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Project(project), project)
		},
	}
}
