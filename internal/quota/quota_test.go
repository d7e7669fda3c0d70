package quota

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const quotaYAML = `
- role: analytics
  guarantees:
    cpus: 4
    mem: 2048
  limits:
    cpus: 8
    mem: 4096
- role: batch
  limits:
    gpus: 0
`

func TestParseConfigs(t *testing.T) {
	configs, err := ParseConfigs([]byte(quotaYAML))
	require.NoError(t, err)

	expected := []Config{
		{
			Role:       "analytics",
			Guarantees: map[string]float64{"cpus": 4, "mem": 2048},
			Limits:     map[string]float64{"cpus": 8, "mem": 4096},
		},
		{
			Role:   "batch",
			Limits: map[string]float64{"gpus": 0},
		},
	}
	require.Empty(t, cmp.Diff(expected, configs))

	_, err = ParseConfigs([]byte("role: [not a list"))
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, Validate(Config{
		Role:       "analytics",
		Guarantees: map[string]float64{"cpus": 4},
		Limits:     map[string]float64{"cpus": 8},
	}))

	// Guarantees with no configured limit are unbounded above, so they fit.
	require.NoError(t, Validate(Config{
		Role:       "analytics",
		Guarantees: map[string]float64{"cpus": 4},
	}))

	err := Validate(Config{Role: ""})
	require.ErrorContains(t, err, "'role' must be set")

	err = Validate(Config{Role: "*"})
	require.ErrorContains(t, err, "default '*' role is not supported")

	err = Validate(Config{Role: "a/b"})
	require.ErrorContains(t, err, "must not contain slashes or whitespace")

	err = Validate(Config{
		Role:       "analytics",
		Guarantees: map[string]float64{"cpus": -1},
	})
	require.ErrorContains(t, err, "negative values are not allowed")

	err = Validate(Config{
		Role:       "analytics",
		Guarantees: map[string]float64{"cpus": 16},
		Limits:     map[string]float64{"cpus": 8},
	})
	require.ErrorContains(t, err, "not contained within the limits")
}

func TestValidateAll(t *testing.T) {
	configs, err := ParseConfigs([]byte(quotaYAML))
	require.NoError(t, err)
	require.NoError(t, ValidateAll(configs))

	err = ValidateAll([]Config{
		{Role: "analytics"},
		{Role: "analytics"},
		{Role: "*"},
	})
	require.ErrorContains(t, err, "duplicate quota configuration for role 'analytics'")
	require.ErrorContains(t, err, "invalid quota configuration for role '*'")
}
