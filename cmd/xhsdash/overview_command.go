package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pipelineSteps describes the backend flow in order, for the overview page.
var pipelineSteps = []struct {
	name        string
	description string
}{
	{"Poll", "fetch new comments from the configured note"},
	{"Extract", "detect generation intent and pull email, type, and prompt"},
	{"Submit", "dispatch the request to the matching AI provider"},
	{"Track", "follow provider job progress until a result is ready"},
	{"Email", "deliver the generated result to the requester"},
}

func newOverviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show what this console does and where to go next",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Comment Pipeline Console", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "  Monitors a pipeline that turns social-media comments into")
			fmt.Fprintln(out, "  AI-generated images and videos, delivered by email.")
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("Pipeline", colorize) {
				fmt.Fprintln(out, line)
			}
			for i, step := range pipelineSteps {
				fmt.Fprintf(out, "  %d. %-8s %s\n", i+1, step.name, step.description)
			}
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("Commands", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  %-16s %s\n", "tasks list", "recent tasks (add --watch to follow)")
			fmt.Fprintf(out, "  %-16s %s\n", "tasks show <id>", "one task with comment and deliveries")
			fmt.Fprintf(out, "  %-16s %s\n", "settings show", "backend pipeline configuration")
			fmt.Fprintf(out, "  %-16s %s\n", "poll run", "trigger a poll cycle now")
			fmt.Fprintf(out, "  %-16s %s\n", "health", "backend liveness probe")
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("Quick Links", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  %-16s %s\n", "Backend API", cfg.API.BaseURL)
			if cfg.Links.MailhogURL != "" {
				fmt.Fprintf(out, "  %-16s %s\n", "Mailhog", cfg.Links.MailhogURL)
			}
			if cfg.Links.MinIOConsoleURL != "" {
				fmt.Fprintf(out, "  %-16s %s\n", "MinIO Console", cfg.Links.MinIOConsoleURL)
			}
			return nil
		},
	}
}
