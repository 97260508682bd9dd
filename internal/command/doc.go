// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for jfctl. It wires flags,
// value sources, validators, and actions for the fetch and check subcommands.
package command
