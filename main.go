// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jfctl/jfctl/internal/command"
	"github.com/jfctl/jfctl/internal/log"
	"github.com/jfctl/jfctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand inserts the default "fetch" subcommand when the
// invocation names no subcommand at all, or leads with flags. Running the
// bare binary fetches with defaults; `jfctl -z guadeloupe` fetches too.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "fetch")
	}
	if strings.HasPrefix(args[1], "-") {
		return append(args[:1:1], append([]string{"fetch"}, args[1:]...)...)
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	// If --help appears anywhere, leave the args alone and let the CLI
	// render usage for whatever was named.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = handleNakedCommand(args)
	}

	return initAndRunApp(args)
}
