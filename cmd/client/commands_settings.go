// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kv-sync/internal/client"
)

func (c *cli) testConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "test-connection <url>",
		Short:   "Ping a remote endpoint and store it on success",
		GroupID: "settings",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				if err := rt.Services.InitService.TestConnection(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "CONNECTED %s\n", rt.Adapter.Endpoint())
				return nil
			})
		},
	}
}

func (c *cli) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "select <key>...",
		Short:   "Choose the keys this device syncs",
		GroupID: "settings",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				st, err := rt.Services.InitService.SelectKeys(ctx, args)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "SELECTED %v\n", st.SelectedKeys)
				return nil
			})
		},
	}
}

func (c *cli) intervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interval <duration|seconds>",
		Short: "Set the period between sync rounds",
		Long: `Set the period between sync rounds. Accepts a Go duration ("5m") or a
number of seconds ("300"). The minimum is one minute.`,
		GroupID: "settings",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := parseIntervalSeconds(args[0])
			if err != nil {
				return err
			}
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				_, err := rt.Services.SettingsService.SetInterval(ctx, seconds)
				return err
			})
		},
	}
}

func (c *cli) enableCmd() *cobra.Command {
	return c.toggleCmd("enable", "Turn periodic sync on", true)
}

func (c *cli) disableCmd() *cobra.Command {
	return c.toggleCmd("disable", "Turn periodic sync off", false)
}

func (c *cli) toggleCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		GroupID: "settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				_, err := rt.Services.SettingsService.SetEnabled(ctx, enabled)
				return err
			})
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   "Forget sync settings and pending changes; user data is kept",
		GroupID: "settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				return rt.Services.InitService.Reset(ctx)
			})
		},
	}
}

func parseIntervalSeconds(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", raw, err)
	}
	return int(d / time.Second), nil
}
