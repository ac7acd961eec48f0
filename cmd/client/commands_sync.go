// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kv-sync/internal/client"
	"github.com/MKhiriev/go-kv-sync/internal/service"
)

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Short:   "Run the background scheduler until interrupted",
		Long:    "Run periodic sync rounds. SIGUSR1 suspends the timers, SIGUSR2 resumes them.",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				app, err := client.NewApp(rt)
				if err != nil {
					return err
				}
				return app.Run(ctx)
			})
		},
	}
}

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   "Run one sync round now",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				res, err := rt.Services.SyncService.SyncNow(ctx)
				if err != nil {
					return fmt.Errorf("sync failed (%s): %w", service.ErrorKind(err), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "SYNCED uploaded=%d applied=%d\n", res.Uploaded, res.Applied)
				for _, key := range res.Requeued {
					fmt.Fprintf(cmd.OutOrStdout(), "REQUEUED %s\n", key)
				}
				return nil
			})
		},
	}
}

func (c *cli) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Adopt the remote store or seed it from this device",
		Long: `Initialize bootstraps this device against the remote store.

A populated remote is adopted as-is. An empty remote is seeded with the
local values of the selected keys.`,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				snap, err := rt.Services.InitService.Initialize(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "INITIALIZED keys=%v values=%d notes=%d\n",
					snap.EnabledKeys, len(snap.Values), len(snap.Notes))
				return nil
			})
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show sync settings and pending changes",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				st, err := rt.Services.SettingsService.Get(ctx)
				if err != nil {
					return err
				}
				snap := rt.Services.StatusService.Snapshot(ctx)
				if st.Configured() && st.Enabled {
					snap.TimeUntilNextSync, _ = service.NextFire(time.Now(), st.LastSuccess(), st.Interval())
				}

				if asJSON {
					return printJSON(cmd.OutOrStdout(), map[string]any{"settings": st, "status": snap})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "endpoint:     %s\n", st.Endpoint)
				fmt.Fprintf(out, "initialized:  %t\n", st.Initialized)
				fmt.Fprintf(out, "enabled:      %t\n", st.Enabled)
				fmt.Fprintf(out, "interval:     %ds\n", st.IntervalSeconds)
				fmt.Fprintf(out, "keys:         %v\n", st.SelectedKeys)
				fmt.Fprintf(out, "pending:      %d\n", snap.Pending)
				if st.LastSync > 0 {
					fmt.Fprintf(out, "last sync:    %s\n", st.LastSuccess().Format(time.RFC3339))
				} else {
					fmt.Fprintln(out, "last sync:    never")
				}
				if st.Configured() && st.Enabled {
					fmt.Fprintf(out, "next sync in: %s\n", snap.TimeUntilNextSync.Round(time.Second))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func (c *cli) clearRemoteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "clear-remote",
		Short:   "Wipe every value and note from the remote store",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the remote store without --yes")
			}
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				if err := rt.Services.InitService.ClearRemote(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "CLEARED remote")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")
	return cmd
}
