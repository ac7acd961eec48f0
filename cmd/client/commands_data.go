// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kv-sync/internal/client"
)

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print the local value of a key",
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				value, ok, err := rt.Services.StorageService.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("key %q is not set", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	}
}

func (c *cli) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Replace the value of a key",
		GroupID: "data",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				return rt.Services.StorageService.SetValue(ctx, args[0], args[1])
			})
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <key> <id>...",
		Short:   "Add ids to the id set stored under key",
		GroupID: "data",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				for _, id := range args[1:] {
					if err := rt.Services.StorageService.AddToSet(ctx, args[0], id); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <key> <id>...",
		Aliases: []string{"rm"},
		Short:   "Remove ids from the id set stored under key",
		GroupID: "data",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				for _, id := range args[1:] {
					if err := rt.Services.StorageService.RemoveFromSet(ctx, args[0], id); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Short:   "Delete a key locally; a synced key is cleared remotely",
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				return rt.Services.StorageService.Delete(ctx, args[0])
			})
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List local keys and values",
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				entries, err := rt.Services.StorageService.List(ctx)
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(entries))
				for k := range entries {
					keys = append(keys, k)
				}
				slices.Sort(keys)
				for _, k := range keys {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, entries[k])
				}
				return nil
			})
		},
	}
}

func (c *cli) noteCmd() *cobra.Command {
	note := &cobra.Command{
		Use:     "note",
		Short:   "Manage per-entity notes",
		GroupID: "data",
	}

	note.AddCommand(
		&cobra.Command{
			Use:   "set <entity-id> <text>",
			Short: "Set the note of an entity",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
					return rt.Services.StorageService.SetNote(ctx, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:     "delete <entity-id>",
			Aliases: []string{"rm"},
			Short:   "Delete the note of an entity",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
					return rt.Services.StorageService.DeleteNote(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "Print every note as JSON",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
					notes, err := rt.Services.StorageService.Notes(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), notes)
				})
			},
		},
	)

	return note
}

func (c *cli) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [key]...",
		Short: "Export local values as JSON",
		Long: `Export writes the values of the given keys, or of every user key when no
key is given, as a JSON object.

Examples:
  kvsync export                       # every key to stdout
  kvsync export app_config -o cfg.json`,
		GroupID: "data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				entries, err := rt.Services.StorageService.Export(ctx, args)
				if err != nil {
					return err
				}
				if output == "" {
					return printJSON(cmd.OutOrStdout(), entries)
				}

				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				return printJSON(f, entries)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Merge a JSON export into the local store",
		Long: `Import merges key/value pairs from a JSON object. Id sets are merged
member by member; other values replace the local ones. Synced changes
trigger an immediate round.`,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readEntries(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return c.withRuntime(cmd, func(ctx context.Context, rt *client.Runtime) error {
				added, err := rt.Services.StorageService.Import(ctx, entries)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), added)
			})
		},
	}
}

// readEntries decodes a JSON object of string values from path, or from
// stdin when path is "-".
func readEntries(stdin io.Reader, path string) (map[string]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var entries map[string]string
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	return entries, nil
}
