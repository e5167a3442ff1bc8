package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xhsdash/internal/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "View and edit backend pipeline settings",
	}
	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))
	return settingsCmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the backend settings record",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			setting, err := client.GetSettings(cmd.Context())
			if err != nil {
				return wrapBackendError(err, client.BaseURL())
			}
			if jsonOutput {
				return writeJSON(cmd, setting)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, settings.Rows(setting, reveal)))
			fmt.Fprintf(out, "Last updated: %s\n", setting.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the raw settings record as JSON")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show secret values instead of masking them")

	return cmd
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field>=<value> ...",
		Short: "Update one or more settings fields",
		Long: "Update settings fields on the backend. Each argument is a field=value\n" +
			"assignment; all assignments are applied in a single save. Numeric fields\n" +
			"fall back to their defaults when the value does not parse.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			current, err := client.GetSettings(cmd.Context())
			if err != nil {
				return wrapBackendError(err, client.BaseURL())
			}

			form := settings.NewForm(current)
			for _, assignment := range args {
				if err := form.Apply(assignment); err != nil {
					return err
				}
			}

			saved, err := client.UpdateSettings(cmd.Context(), form.Update())
			if err != nil {
				return wrapBackendError(err, client.BaseURL())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Settings saved.")
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, settings.Rows(saved, false)))
			return nil
		},
	}
	return cmd
}
