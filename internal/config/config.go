// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Namespace is the config file section holding the tool's keys. Lookups try
// the namespaced key first, then the bare key.
const Namespace = "french_public_holidays"

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Namespace: dot-prefixed keyspace tried before bare keys
//     (e.g. "french_public_holidays.zone").
//   - Data: raw key/value tree unmarshaled from YAML.
//
// Note: Data is intentionally kept as map[string]any to allow flexible shapes.
// Callers should use the typed getter (GetString) for convenience.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// ErrNotFound reports that no config file exists in the standard locations.
// The tool runs fine without one. An explicitly named file (--config flag or
// JFCTL_CFG_FILE) that is missing, and any file that cannot be read or
// parsed, are regular errors and fatal to the caller.
var ErrNotFound = errors.New("no config file found")

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
// Returns an error if the value exists but is not a string.
func GetString(key string, defaultValue ...string) (string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

// Load reads the YAML configuration file and populates the global Config.
// When cfgFilePath is provided and non-empty it names the file to load
// (the --config flag); otherwise the standard locations are searched.
//
// Returns the loaded Type or an error if the file could not be located or
// parsed.
func Load(cfgFilePath ...string) (Type, error) {
	explicit := ""
	if len(cfgFilePath) == 1 {
		explicit = cfgFilePath[0]
	}

	path, err := getConfigFile(explicit)
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, err
	}

	Config = Type{
		Source:    path,
		Namespace: Namespace,
		Data:      data}

	return Config, nil
}

// get traverses the configuration tree using a dotted key path (e.g.
// "french_public_holidays.zone"). If Namespace is set, a namespaced candidate
// key is attempted first (Namespace + "." + kspec), then the unnamespaced key.
// Returns the raw value (any) if found.
func (cfg *Type) get(kspec string) (any, error) {
	if len(cfg.Data) == 0 {
		_, _ = Load(cfg.Source)
	}

	candidateKeys := []string{kspec}
	if cfg.Namespace != "" && !strings.HasPrefix(kspec, cfg.Namespace+".") {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		keys := strings.Split(key, ".")
		var current interface{} = cfg.Data

		success := true
		for _, key := range keys {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// getConfigFile returns the absolute path to the YAML config file. An explicit
// path (from the --config flag) wins. Otherwise, if the JFCTL_CFG_FILE
// environment variable is set, it is treated as the full path to the config
// file. Failing both, the OS-specific user configuration directory returned by
// os.UserConfigDir is used with the filename "jfctl.yaml". The file must exist
// and not be a directory.
func getConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if fileInfo, err := os.Stat(explicit); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", explicit)
				return explicit, nil
			}
			return "", fmt.Errorf("config file is a directory: %s", explicit)
		}
		return "", fmt.Errorf("config file not found: %s", explicit)
	}

	if cfgPath := os.Getenv("JFCTL_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from JFCTL_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("JFCTL_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at JFCTL_CFG_FILE path: %s", cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "jfctl.yaml")
	if fileInfo, err := os.Stat(file); err == nil {
		if !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}

	return "", fmt.Errorf("%w in standard locations", ErrNotFound)
}
