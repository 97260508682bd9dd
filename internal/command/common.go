// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/jfctl/jfctl/internal/config"
	"github.com/jfctl/jfctl/internal/holidays"
	"github.com/jfctl/jfctl/internal/log"
)

// newClient builds the API client. The config-only url key
// (french_public_holidays.url) overrides the government endpoint, for
// mirrors and local fixtures; there is deliberately no flag for it.
func newClient() *holidays.Client {
	client := holidays.NewClient()
	if url, err := config.GetString("url"); err == nil && url != "" {
		log.Debugf("overriding base URL: url=%s", url)
		client.BaseURL = url
	}
	return client
}
