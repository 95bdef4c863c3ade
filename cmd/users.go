package cmd

import (
	"context"
	"errors"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "users",
		Short:       "Administer user accounts",
		Annotations: route("/admin/users"),
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersCreateCmd(app),
		newUsersUpdateCmd(app),
		newUsersDeleteCmd(app),
		newUsersResetPasswordCmd(app),
	)

	return cmd
}

func newUsersListCmd(app *app) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter domain.Role
			if role != "" {
				parsed, err := domain.ParseRole(role)
				if err != nil {
					return err
				}
				filter = parsed
			}

			store := app.stores.Users
			err := fetch(cmd, "Fetching users", func(ctx context.Context) error {
				var err error
				if filter != "" {
					_, err = store.FetchByRole(ctx, filter)
				} else {
					_, err = store.FetchAll(ctx)
				}
				return err
			})
			if err != nil {
				return err
			}

			users := store.Snapshot().Items
			return writeView(cmd, app, listing.Users(users), users)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Only users with this role")

	return cmd
}

func newUsersCreateCmd(app *app) *cobra.Command {
	var registration domain.Registration
	var role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if role != "" {
				parsed, err := domain.ParseRole(role)
				if err != nil {
					return err
				}
				registration.Role = parsed
			}

			user, err := app.stores.Users.Create(cmd.Context(), registration)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Users([]domain.User{user}), user)
		},
	}

	cmd.Flags().StringVar(&registration.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Email")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Initial password")
	cmd.Flags().StringVar(&role, "role", "", "Role: client, staff or admin")
	cmd.Flags().StringVar(&registration.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&registration.Company, "company", "", "Company name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersUpdateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Change a user's details or role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user")
			if err != nil {
				return err
			}

			patch := domain.UserPatch{
				Name:    optional(cmd, "name"),
				Email:   optional(cmd, "email"),
				Phone:   optional(cmd, "phone"),
				Company: optional(cmd, "company"),
			}
			if raw := optional(cmd, "role"); raw != nil {
				role, err := domain.ParseRole(*raw)
				if err != nil {
					return err
				}
				patch.Role = &role
			}
			if patch.Empty() {
				return errors.New("nothing to update: pass at least one of --name, --email, --phone, --company, --role")
			}

			user, err := app.stores.Users.Update(cmd.Context(), id, patch)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Users([]domain.User{user}), user)
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("role", "", "Role: client, staff or admin")

	return cmd
}

func newUsersDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "user")
			if err != nil {
				return err
			}
			if err := app.stores.Users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return writeDone(cmd, "User %d deleted.", id)
		},
	}
}

func newUsersResetPasswordCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "reset-password <email>",
		Short:       "Send a password reset to an email address",
		Args:        cobra.ExactArgs(1),
		Annotations: route("/auth/forgot-password"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.stores.Users.ResetPassword(cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeDone(cmd, "Password reset requested for %s.", args[0])
		},
	}
}
