// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package holidays

import (
	"errors"
	"fmt"
	"time"
)

// The API only carries data for a bounded window around the current year.
// Both bounds are inclusive: current-20 and a range ending at current+5 are
// still valid.
const (
	MaxYearsPast  = 20
	MaxYearsAhead = 5
)

var (
	ErrYearTooFarPast   = errors.New("the year cannot exceed 20 years in the past")
	ErrYearTooFarFuture = errors.New("the year cannot exceed 5 years in the future")
)

// Params is the resolved parameter set for one invocation. It is built once
// from flags, config file, environment, and defaults, and passed by value;
// nothing mutates it after construction.
type Params struct {
	Zone     string
	Year     int
	Duration int
	Output   string
}

// Validate rejects parameter sets whose year range falls outside the
// supported window relative to now. It is called before any network I/O.
func (p Params) Validate(now time.Time) error {
	if p.Duration < 1 {
		return fmt.Errorf("duration must be at least 1, got %d", p.Duration)
	}
	if !ValidZone(p.Zone) {
		return fmt.Errorf("unknown zone %q (choices: %v)", p.Zone, Zones)
	}

	current := now.Year()
	if current-p.Year > MaxYearsPast {
		return fmt.Errorf("%w: %d", ErrYearTooFarPast, p.Year)
	}
	if current+MaxYearsAhead < p.Year+p.Duration-1 {
		return fmt.Errorf("%w: range ends %d", ErrYearTooFarFuture, p.Year+p.Duration-1)
	}

	return nil
}
