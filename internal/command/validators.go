// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/jfctl/jfctl/internal/holidays"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func ZoneValidator(value any) error {
	zone, ok := value.(string)
	if !ok || !holidays.ValidZone(zone) {
		return fmt.Errorf("must be one of %v", holidays.Zones)
	}
	return nil
}
