// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jfctl/jfctl/internal/config"
	"github.com/jfctl/jfctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The config file has to be resolved before the app is built: the flag
	// value sources need its path at construction time. The standard
	// locations are optional, but a file that exists and cannot be read or
	// parsed is fatal, however its path was reached.
	cfgPath := scanConfigFlag(args)
	cfg, err := config.Load(cfgPath)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "jfctl",
		Usage: "French public holidays fetcher",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "jfctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		fetchCommandBuilder(m),
		checkCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// scanConfigFlag pre-parses --config/-c out of the raw args so the file can
// be loaded before flag parsing proper happens.
func scanConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-c="):
			return strings.TrimPrefix(a, "-c=")
		}
	}
	return ""
}
