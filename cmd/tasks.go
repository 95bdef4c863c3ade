package cmd

import (
	"context"
	"errors"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "tasks",
		Short:       "Browse and update tasks",
		Annotations: route("/tasks"),
	}

	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksCreateCmd(app),
		newTasksUpdateCmd(app),
		newTasksStatusCmd(app),
		newTasksAssignCmd(app),
		newTasksDeleteCmd(app),
	)

	return cmd
}

func newTasksListCmd(app *app) *cobra.Command {
	var projectID int64
	var userID int64
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mine {
				user, err := requireUser(app)
				if err != nil {
					return err
				}
				userID = user.UserID
			}
			if projectID > 0 && userID > 0 {
				return errors.New("--project cannot be combined with --user or --mine")
			}

			store := app.stores.Tasks
			err := fetch(cmd, "Fetching tasks", func(ctx context.Context) error {
				var err error
				switch {
				case projectID > 0:
					_, err = store.FetchByProject(ctx, projectID)
				case userID > 0:
					_, err = store.FetchByUser(ctx, userID)
				default:
					_, err = store.FetchAll(ctx)
				}
				return err
			})
			if err != nil {
				return err
			}

			tasks := store.Snapshot().Items
			return writeView(cmd, app, listing.Tasks(tasks), tasks)
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Only tasks of this project id")
	cmd.Flags().Int64Var(&userID, "user", 0, "Only tasks assigned to this user id")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only tasks assigned to you")

	return cmd
}

func newTasksCreateCmd(app *app) *cobra.Command {
	var task domain.NewTask
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if priority != "" {
				if task.Priority, err = domain.ParseTaskPriority(priority); err != nil {
					return err
				}
			}
			if task.DueDate, err = parseDate(due); err != nil {
				return err
			}

			created, err := app.stores.Tasks.Create(cmd.Context(), task)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Tasks([]domain.Task{created}), created)
		},
	}

	cmd.Flags().Int64Var(&task.ProjectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&task.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&task.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high")
	cmd.Flags().Int64Var(&task.AssigneeID, "assignee", 0, "Assignee user id")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTasksUpdateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Change a task's title, description, priority or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
			if err != nil {
				return err
			}

			patch := domain.TaskPatch{
				Title:       optional(cmd, "title"),
				Description: optional(cmd, "description"),
			}
			if raw := optional(cmd, "priority"); raw != nil {
				priority, err := domain.ParseTaskPriority(*raw)
				if err != nil {
					return err
				}
				patch.Priority = &priority
			}
			if raw := optional(cmd, "due"); raw != nil {
				if patch.DueDate, err = parseDate(*raw); err != nil {
					return err
				}
			}
			if patch.Empty() {
				return errors.New("nothing to update: pass at least one of --title, --description, --priority, --due")
			}

			task, err := app.stores.Tasks.Update(cmd.Context(), id, patch)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Tasks([]domain.Task{task}), task)
		},
	}

	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("priority", "", "Priority: low, medium or high")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD")

	return cmd
}

func newTasksStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <status>",
		Short: "Set a task's status (todo, in-progress, review, completed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
			if err != nil {
				return err
			}
			status, err := domain.ParseTaskStatus(args[1])
			if err != nil {
				return err
			}

			task, err := app.stores.Tasks.UpdateStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Tasks([]domain.Task{task}), task)
		},
	}
}

func newTasksAssignCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <task-id> <user-id>",
		Short: "Assign a task to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
			if err != nil {
				return err
			}
			userID, err := parseID(args[1], "user")
			if err != nil {
				return err
			}

			task, err := app.stores.Tasks.Assign(cmd.Context(), id, userID)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Tasks([]domain.Task{task}), task)
		},
	}
}

func newTasksDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
			if err != nil {
				return err
			}
			if err := app.stores.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return writeDone(cmd, "Task %d deleted.", id)
		},
	}
}
