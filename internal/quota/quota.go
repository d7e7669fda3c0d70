package quota

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/zagrev/mesos/pkg/check"
	"github.com/zagrev/mesos/pkg/quantity"
)

// Validate checks a single role quota configuration: its fields must pass
// Config.Validate and the guarantees must fit within the limits.
func Validate(config Config) error {
	if err := check.Validate(config); err != nil {
		return err
	}

	guarantees := quantity.QuantitiesFromMap(config.Guarantees)
	limits := quantity.LimitsFromMap(config.Limits)

	if !limits.ContainsQuantities(guarantees) {
		return errors.Errorf("guarantees %s are not contained within the limits %s",
			guarantees, limits)
	}

	return nil
}

// ValidateAll validates a list of role quota configurations, additionally
// rejecting configurations that name the same role more than once. All
// failures are reported, not just the first.
func ValidateAll(configs []Config) error {
	var result *multierror.Error

	roles := make(map[string]bool, len(configs))
	for _, config := range configs {
		if roles[config.Role] {
			result = multierror.Append(result,
				errors.Errorf("duplicate quota configuration for role '%s'", config.Role))
			continue
		}
		roles[config.Role] = true

		if err := Validate(config); err != nil {
			result = multierror.Append(result,
				errors.Wrapf(err, "invalid quota configuration for role '%s'", config.Role))
		}
	}

	return result.ErrorOrNil()
}
