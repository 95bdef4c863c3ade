package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in and keep the session for later commands",
		Annotations: route("/auth/login"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readPassword(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			session, err := app.session.Login(cmd.Context(), domain.Credentials{
				Email:    strings.TrimSpace(email),
				Password: secret,
			})
			if err != nil {
				return err
			}

			return writeDone(cmd, "Signed in as %s (%s).", session.User.Email, session.User.Role)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration
	var role string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:         "register",
		Short:       "Create an account and sign in",
		Annotations: route("/auth/register"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readPassword(cmd, registration.Password, passwordStdin)
			if err != nil {
				return err
			}
			registration.Password = secret

			if role != "" {
				parsed, err := domain.ParseRole(role)
				if err != nil {
					return err
				}
				registration.Role = parsed
			}

			session, err := app.session.Register(cmd.Context(), registration)
			if err != nil {
				return err
			}

			return writeDone(cmd, "Registered and signed in as %s.", session.User.Email)
		},
	}

	cmd.Flags().StringVar(&registration.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().StringVar(&role, "role", "", "Role: client, staff or admin")
	cmd.Flags().StringVar(&registration.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&registration.Company, "company", "", "Company name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Forget the stored session",
		Annotations: route("/auth/login"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Logout(cmd.Context())
			return writeDone(cmd, "Signed out.")
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "whoami",
		Short:       "Show the signed-in user",
		Annotations: route("/profile"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.session.Current()
			expiresAt, hasExpiry := app.session.TokenExpiry()

			var data any
			if session.IsAuthenticated() {
				data = session.User
			}
			return writeView(cmd, app, listing.Session(session, expiresAt, hasExpiry, app.now()), data)
		},
	}
}

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "profile",
		Short:       "Manage your own profile",
		Annotations: route("/profile"),
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Change name, email, phone or company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			patch := domain.UserPatch{
				Name:    optional(cmd, "name"),
				Email:   optional(cmd, "email"),
				Phone:   optional(cmd, "phone"),
				Company: optional(cmd, "company"),
			}
			if patch.Empty() {
				return errors.New("nothing to update: pass at least one of --name, --email, --phone, --company")
			}

			session, err := app.session.UpdateProfile(cmd.Context(), user.UserID, patch)
			if err != nil {
				return err
			}

			expiresAt, hasExpiry := app.session.TokenExpiry()
			return writeView(cmd, app, listing.Session(session, expiresAt, hasExpiry, app.now()), session.User)
		},
	}
	update.Flags().String("name", "", "Full name")
	update.Flags().String("email", "", "Email")
	update.Flags().String("phone", "", "Phone number")
	update.Flags().String("company", "", "Company name")

	cmd.AddCommand(update)
	return cmd
}

func newPasswordCmd(app *app) *cobra.Command {
	var oldPassword string
	var newPassword string

	cmd := &cobra.Command{
		Use:         "password",
		Short:       "Manage your password",
		Annotations: route("/profile"),
	}

	change := &cobra.Command{
		Use:   "change",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}
			if err := app.session.ChangePassword(cmd.Context(), user.UserID, oldPassword, newPassword); err != nil {
				return err
			}
			return writeDone(cmd, "Password changed.")
		},
	}
	change.Flags().StringVar(&oldPassword, "old", "", "Current password")
	change.Flags().StringVar(&newPassword, "new", "", "New password")
	_ = change.MarkFlagRequired("old")
	_ = change.MarkFlagRequired("new")

	cmd.AddCommand(change)
	return cmd
}

func readPassword(cmd *cobra.Command, flagValue string, fromStdin bool) (string, error) {
	if !fromStdin {
		if flagValue == "" {
			return "", errors.New("password is required: pass --password or --password-stdin")
		}
		return flagValue, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return "", errors.New("password from stdin is empty")
	}
	return line, nil
}
