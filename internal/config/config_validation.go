// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants: a DSN and a token sign key are present, pool and
// worker sizes are positive and every duration is set.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	return validateStruct(cfg)
}

func validateStruct(s any) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]error, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Errorf("%s: failed %q rule", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(fields...))
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
