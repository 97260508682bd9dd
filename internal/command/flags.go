// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/jfctl/jfctl/internal/config"
	"github.com/jfctl/jfctl/internal/holidays"
)

const DefaultOutput = "french_public_holidays.csv"

// NewConfigFlag constructs the --config flag. Its value is consumed by
// InitApp before parsing; the flag exists so it shows up in --help and so
// the parser accepts it.
func NewConfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "config file path",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JFCTL_CFG_FILE"),
		),
	}
}

// NewDurationFlag constructs the --duration flag.
func NewDurationFlag(cfgPath string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "number of consecutive years to fetch",
		Value:   1,
		Sources: valueSources(cfgPath, "duration", "FRENCH_PUBLIC_HOLIDAYS_DURATION"),
	}
}

// NewOutputFlag constructs the --output flag. The extension (csv, json,
// yaml, yml) selects the serialization format.
func NewOutputFlag(cfgPath string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file; extension selects the format (csv, json, yaml, yml)",
		Value:   DefaultOutput,
		Sources: valueSources(cfgPath, "output", "FRENCH_PUBLIC_HOLIDAYS_OUTPUT"),
	}
}

// NewYearFlag constructs the --year flag, defaulting to the current year.
func NewYearFlag(cfgPath string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "year",
		Aliases: []string{"y"},
		Usage:   "starting year",
		Value:   time.Now().Year(),
		Sources: valueSources(cfgPath, "year", "FRENCH_PUBLIC_HOLIDAYS_YEAR"),
	}
}

// NewZoneFlag constructs the --zone flag. Unknown zones are rejected at
// parse time, before any network call.
func NewZoneFlag(cfgPath string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "zone",
		Aliases: []string{"z"},
		Usage:   "holiday zone to query",
		Value:   holidays.DefaultZone,
		Sources: valueSources(cfgPath, "zone", "FRENCH_PUBLIC_HOLIDAYS_ZONE"),
		Validator: func(value string) error {
			return FlagValidators(value, ZoneValidator)
		},
	}
}

// valueSources builds the flag's value source chain. Chain order encodes the
// precedence below explicit flags: config file (namespaced key, then bare
// key), then the environment variable, then the flag's default.
func valueSources(cfgPath string, name string, envKey string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain()
	if cfgPath != "" {
		chain.Chain = append(chain.Chain,
			yaml.YAML(config.Namespace+"."+name, altsrc.StringSourcer(cfgPath)),
			yaml.YAML(name, altsrc.StringSourcer(cfgPath)),
		)
	}
	chain.Chain = append(chain.Chain, cli.EnvVar(envKey))
	return chain
}
