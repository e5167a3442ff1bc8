package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"xhsdash/internal/api"
	"xhsdash/internal/refresh"
	"xhsdash/internal/views"
)

func newTasksCommand(ctx *commandContext) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect generation tasks",
	}
	tasksCmd.AddCommand(newTasksListCommand(ctx))
	tasksCmd.AddCommand(newTasksShowCommand(ctx))
	return tasksCmd
}

func newTasksListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var offset int
	var watch bool
	var intervalSec int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent tasks in backend order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Watch.TaskLimit
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			interval := resolveInterval(intervalSec, cfg.WatchInterval())

			loop := &refresh.Loop{
				Interval: interval,
				Load: func(ctx context.Context) (any, error) {
					return client.ListTasks(ctx, limit, offset)
				},
				Render: func(value any) {
					list := value.(*api.TaskList)
					if watch {
						renderWatchStamp(out, interval)
					}
					if jsonOutput {
						_ = writeJSON(cmd, list)
						return
					}
					if len(list.Tasks) == 0 {
						fmt.Fprintln(out, views.EmptyTasksMessage)
						return
					}
					fmt.Fprintln(out, renderTable(views.TaskListHeader, views.TaskRows(list.Tasks, colorize), 1))
				},
				OnError: func(err error) {
					fmt.Fprintf(out, "refresh failed: %s\n", wrapBackendError(err, client.BaseURL()))
				},
			}

			if watch {
				return loop.Run(cmd.Context())
			}
			if err := loop.Once(cmd.Context()); err != nil {
				return wrapBackendError(err, client.BaseURL())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum tasks to fetch (default from config)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of tasks to skip")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-fetch and re-render on an interval")
	cmd.Flags().IntVar(&intervalSec, "interval", 0, "Watch refresh interval in seconds (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the raw task list as JSON")

	return cmd
}

func newTasksShowCommand(ctx *commandContext) *cobra.Command {
	var watch bool
	var intervalSec int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task with its comment and delivery history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			interval := resolveInterval(intervalSec, cfg.WatchInterval())

			loop := &refresh.Loop{
				Interval: interval,
				Load: func(ctx context.Context) (any, error) {
					return client.GetTask(ctx, id)
				},
				Render: func(value any) {
					task := value.(*api.Task)
					if watch {
						renderWatchStamp(out, interval)
					}
					if jsonOutput {
						_ = writeJSON(cmd, task)
						return
					}
					renderSections(out, views.TaskDetailSections(task, colorize), colorize)
				},
				OnError: func(err error) {
					fmt.Fprintf(out, "refresh failed: %s\n", wrapBackendError(err, client.BaseURL()))
				},
			}

			if watch {
				return loop.Run(cmd.Context())
			}
			if err := loop.Once(cmd.Context()); err != nil {
				if api.IsNotFound(err) {
					fmt.Fprintln(out, "Task not found")
					return nil
				}
				return wrapBackendError(err, client.BaseURL())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-fetch and re-render on an interval")
	cmd.Flags().IntVar(&intervalSec, "interval", 0, "Watch refresh interval in seconds (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the raw task as JSON")

	return cmd
}

func resolveInterval(flagSec int, configured time.Duration) time.Duration {
	if flagSec > 0 {
		return time.Duration(flagSec) * time.Second
	}
	return configured
}
