// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/jfctl/jfctl/internal/holidays"
	"github.com/jfctl/jfctl/internal/log"
	"github.com/jfctl/jfctl/internal/meta"
	"github.com/jfctl/jfctl/internal/output"
)

// fetchCommandAction is the action handler for the "fetch" subcommand. It
// runs the pipeline: resolve parameters, validate the year window, fetch one
// document per year, serialize to the output file.
func fetchCommandAction(ctx context.Context, cmd *cli.Command) error {
	p := holidays.Params{
		Zone:     cmd.String("zone"),
		Year:     cmd.Int("year"),
		Duration: cmd.Int("duration"),
		Output:   cmd.String("output"),
	}
	log.Debugf("resolved params: %+v", p)

	if err := p.Validate(time.Now()); err != nil {
		return err
	}

	// The extension check happens here, before any network I/O, so a bad
	// output path never costs a fetch.
	out, err := output.New(p.Output, output.DefaultHeader)
	if err != nil {
		return err
	}

	years, err := newClient().FetchRange(ctx, p)
	if err != nil {
		return err
	}

	if err := out.Save(years); err != nil {
		return err
	}

	log.Infof("wrote %s", p.Output)
	return nil
}

// fetchCommandBuilder constructs the cli.Command for "fetch", wiring
// metadata, flags, and the action handler.
func fetchCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "fetch public holidays and write them to a file",
		UsageText: "jfctl fetch [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewConfigFlag(),
			NewDurationFlag(m.Config.Source),
			NewOutputFlag(m.Config.Source),
			NewYearFlag(m.Config.Source),
			NewZoneFlag(m.Config.Source),
		},
		Action: fetchCommandAction,
	}
}
