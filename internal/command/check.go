// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jfctl/jfctl/internal/meta"
)

// checkCommandAction is the action handler for the "check" subcommand. It
// re-fetches the date's whole year on every call and reports containment;
// there is no caching, so scripted repeated checks should cache upstream.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	date := cmd.Args().First()
	if date == "" {
		return fmt.Errorf("a date is required: jfctl check <YYYY-MM-DD>")
	}

	zone := cmd.String("zone")
	desc, ok, err := newClient().Description(ctx, zone, date)
	if err != nil {
		return err
	}

	if ok {
		fmt.Printf("%s is a public holiday in %s: %s\n", date, zone, desc)
	} else {
		fmt.Printf("%s is not a public holiday in %s\n", date, zone)
	}
	return nil
}

// checkCommandBuilder constructs the cli.Command for "check", wiring
// metadata, flags, and the action handler.
func checkCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "check whether a single date is a public holiday",
		UsageText: "jfctl check <YYYY-MM-DD> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewConfigFlag(),
			NewZoneFlag(m.Config.Source),
		},
		Action: checkCommandAction,
	}
}
