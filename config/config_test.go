package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "butane", cfg.System)
	assert.Len(t, cfg.States, 2)
}

func TestRoundTrip(t *testing.T) {
	path := t.TempDir() + "/run.yaml"
	cfg := DefaultConfig()
	cfg.Sampling.Steps = 42
	cfg.States[0].Name = "renamed"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Sampling.Steps)
	assert.Equal(t, "renamed", got.States[0].Name)
	//untouched fields keep their defaults
	assert.Equal(t, DefaultGamma, got.Dynamics.Gamma)
}

func TestLoadPartial(t *testing.T) {
	path := t.TempDir() + "/partial.yaml"
	partial := []byte("sampling:\n  steps: 7\n")
	require.NoError(t, os.WriteFile(path, partial, 0644))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Sampling.Steps)
	assert.Equal(t, "butane", got.System)
	require.NoError(t, got.Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.System = "argon" },
		func(c *Config) { c.Dynamics.Integrator = "euler" },
		func(c *Config) { c.Dynamics.Dt = 0 },
		func(c *Config) { c.Sampling.MaxLength = 2 },
		func(c *Config) { c.CVs = nil },
		func(c *Config) { c.CVs[0].Kind = "angle" },
		func(c *Config) { c.States[1].CV = "psi" },
		func(c *Config) { c.States = c.States[:1] },
	}
	for i, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		assert.Errorf(t, cfg.Validate(), "case %d should not validate", i)
	}
}
