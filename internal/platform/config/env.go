// Package config loads service configuration from the process environment.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"
)

// ParseEnv fills target from its env struct tags. Every field error is
// reported, not only the first.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validator is implemented by configs that check themselves after parsing.
type Validator interface {
	Validate() error
}

// Required returns an error for every named value that is blank.
//
// Failures are aggregated so a single run reports all missing settings.
func Required(values map[string]string) error {
	var err error
	for _, name := range sortedKeys(values) {
		if strings.TrimSpace(values[name]) == "" {
			err = multierr.Append(err, fmt.Errorf("%s is required", name))
		}
	}
	return err
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
