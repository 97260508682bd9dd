// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfctl/jfctl/internal/config"
	"github.com/jfctl/jfctl/internal/holidays"
)

func TestNewClientURLOverride(t *testing.T) {
	cfgPath, err := filepath.Abs(filepath.Join("testdata", "url.yaml"))
	require.NoError(t, err)

	t.Setenv("JFCTL_CFG_FILE", cfgPath)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	_, err = config.Load()
	require.NoError(t, err)

	client := newClient()
	assert.Equal(t, "http://localhost:9999", client.BaseURL)
}

func TestNewClientDefaultURL(t *testing.T) {
	// Non-empty data without a url key, so the getter does not lazily
	// reload from the environment.
	config.Config = config.Type{Data: map[string]interface{}{"zone": "metropole"}}
	t.Cleanup(func() { config.Config = config.Type{} })

	client := newClient()
	assert.Equal(t, holidays.DefaultBaseURL, client.BaseURL)
}
