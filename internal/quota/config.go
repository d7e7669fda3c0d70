// Package quota implements role quota configuration, validation, and
// admission tracking on top of the resource accounting types.
package quota

import (
	"math"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/zagrev/mesos/pkg/check"
)

// Config is the quota configuration for a single role: the amounts the role
// is guaranteed and the caps it may never exceed. A resource missing from
// Limits is unlimited for the role.
type Config struct {
	Role       string             `json:"role"`
	Guarantees map[string]float64 `json:"guarantees,omitempty"`
	Limits     map[string]float64 `json:"limits,omitempty"`
}

// ParseConfigs unmarshals a YAML (or JSON) list of role quota configurations.
func ParseConfigs(raw []byte) ([]Config, error) {
	var configs []Config
	if err := yaml.Unmarshal(raw, &configs); err != nil {
		return nil, errors.Wrap(err, "cannot parse quota configuration")
	}
	return configs, nil
}

// Validate implements the check.Validatable interface.
func (c Config) Validate() []error {
	errs := []error{
		check.NotEmpty(c.Role, "'role' must be set"),
		check.True(c.Role != "*", "setting quota for the default '*' role is not supported"),
		check.False(strings.ContainsAny(c.Role, " \t/\\"),
			"role '%s' must not contain slashes or whitespace", c.Role),
	}

	for name, value := range c.Guarantees {
		errs = append(errs, checkScalarValue("guarantee", name, value))
	}
	for name, value := range c.Limits {
		errs = append(errs, checkScalarValue("limit", name, value))
	}

	return errs
}

func checkScalarValue(what, name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("invalid %s {'%s': %v}: value must be a finite number",
			what, name, value)
	}
	return check.GreaterThanOrEqualTo(value, 0.0,
		"invalid %s {'%s': %v}: negative values are not allowed", what, name, value)
}
