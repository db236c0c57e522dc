// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New()

// validate checks the merged [StructuredConfig] against its `validate`
// struct tags before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that lists each failing field and rule.
func (cfg *StructuredConfig) validate() error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	failures := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		failures = append(failures, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(failures, "; "))
}
