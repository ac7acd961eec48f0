// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kv-sync/internal/client"
	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
)

// cli carries the state shared by every subcommand.
type cli struct {
	flags *config.Flags
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "kvsync",
		Short: "Synchronise a local key-value store with a remote store",
		Long: `kvsync keeps selected keys of a local key-value store in sync with a
remote store over HTTP.

Local edits are recorded in a coalesced operation log and uploaded in
periodic rounds; the remote snapshot returned by each round is applied
back to the local store.`,
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetVersionTemplate(buildInfo())
	c.flags = config.RegisterClientFlags(root.PersistentFlags())

	root.AddGroup(
		&cobra.Group{ID: "sync", Title: "Sync commands:"},
		&cobra.Group{ID: "data", Title: "Data commands:"},
		&cobra.Group{ID: "settings", Title: "Settings commands:"},
	)

	root.AddCommand(
		c.runCmd(), c.syncCmd(), c.initCmd(), c.statusCmd(), c.clearRemoteCmd(),
		c.getCmd(), c.setCmd(), c.addCmd(), c.removeCmd(), c.deleteCmd(), c.listCmd(),
		c.noteCmd(), c.exportCmd(), c.importCmd(),
		c.testConnectionCmd(), c.selectCmd(), c.intervalCmd(), c.enableCmd(), c.disableCmd(), c.resetCmd(),
	)

	return root
}

// withRuntime opens the client runtime for the duration of fn.
func (c *cli) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *client.Runtime) error) error {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewFileLogger("client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	log = &logger.Logger{Logger: log.With().Str("command", cmd.Name()).Logger()}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := client.NewRuntime(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("client runtime init error")
		return err
	}
	defer rt.Close()

	if err = fn(ctx, rt); err != nil {
		log.Err(err).Msg("command failed")
		return err
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
