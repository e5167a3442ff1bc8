package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPollCommand(ctx *commandContext) *cobra.Command {
	pollCmd := &cobra.Command{
		Use:   "poll",
		Short: "Control the backend comment poller",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Trigger an immediate poll cycle",
		Long: "Ask the backend to run one comment poll cycle now, outside the\n" +
			"regular polling interval. The command returns as soon as the cycle is\n" +
			"enqueued; watch the task list for results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			resp, err := client.RunPoll(cmd.Context())
			if err != nil {
				return wrapBackendError(err, client.BaseURL())
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	pollCmd.AddCommand(runCmd)
	return pollCmd
}
