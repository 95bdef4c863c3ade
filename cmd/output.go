package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func asJSON(cmd *cobra.Command) bool {
	value, err := cmd.Flags().GetBool(jsonFlag)
	return err == nil && value
}

// writeView prints data as JSON when --json is set and the rendered view otherwise.
func writeView(cmd *cobra.Command, app *app, view listing.View, data any) error {
	return writePage(cmd, app, data, view)
}

// writePage is writeView for several sections printed one after another.
func writePage(cmd *cobra.Command, app *app, data any, views ...listing.View) error {
	if asJSON(cmd) {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	rendered, err := app.renderer(views...)
	if err != nil {
		return fmt.Errorf("render %s: %w", strings.ToLower(views[0].Title), err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeDone(cmd *cobra.Command, format string, args ...any) error {
	if asJSON(cmd) {
		return nil
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	return err
}

func requireUser(app *app) (domain.User, error) {
	user, err := app.session.RequireUser()
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: run `portal login` first", err)
	}
	return user, nil
}

func parseID(raw string, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return &parsed, nil
}

// optional returns a pointer to the flag's value only when the user set it.
func optional(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &value
}
