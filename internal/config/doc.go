// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for jfctl's user
// configuration. The configuration is expected to be a YAML document with a
// french_public_holidays section, located either at the path given on the
// command line, at the path in the JFCTL_CFG_FILE environment variable, or in
// the OS-specific user configuration directory:
//   - Linux/macOS: $XDG_CONFIG_HOME/jfctl.yaml or $HOME/.config/jfctl.yaml
//   - Windows: %APPDATA%/jfctl/jfctl.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions.
package config
