package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	bufferSize int
	name       string
	calls      []string
}

var errNegative = errors.New("buffer size cannot be negative")

func withBufferSize(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.bufferSize = n
		c.calls = append(c.calls, "bufferSize")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("Applies in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withName("dna"), withBufferSize(64), withName("rna"))

		require.NoError(t, err)
		require.Equal(t, 64, cfg.bufferSize)
		require.Equal(t, "rna", cfg.name)
		require.Equal(t, []string{"name", "bufferSize", "name"}, cfg.calls)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withBufferSize(-1), withName("never"))

		require.ErrorIs(t, err, errNegative)
		require.Empty(t, cfg.name)
	})

	t.Run("No options", func(t *testing.T) {
		cfg := &testConfig{bufferSize: 8}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 8, cfg.bufferSize)
	})
}
