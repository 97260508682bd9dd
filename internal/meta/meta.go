// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/jfctl/jfctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, and the context.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
