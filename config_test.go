package pagescrape_test

import (
	"testing"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := pagescrape.DefaultConfig()

	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "tmp", cfg.Dir)
	assert.Equal(t, pagescrape.FeatureFormatText, cfg.FeatureFormat)
	require.NoError(t, cfg.Validate())
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("overrides present keys", func(t *testing.T) {
		t.Parallel()

		cfg := pagescrape.DefaultConfig()
		err := cfg.ApplyEnv(map[string]string{
			pagescrape.EnvTimeout:         "2s",
			pagescrape.EnvDir:             "state",
			pagescrape.EnvTitleSelector:   "h1",
			pagescrape.EnvFeatureSelector: ".perk",
			pagescrape.EnvFeatureFormat:   "MARKDOWN",
			pagescrape.EnvUserAgent:       "bot/1",
			pagescrape.EnvMaxBodyBytes:    "1024",
		})

		require.NoError(t, err)
		assert.Equal(t, pagescrape.Config{
			Timeout:         2 * time.Second,
			Dir:             "state",
			TitleSelector:   "h1",
			FeatureSelector: ".perk",
			FeatureFormat:   pagescrape.FeatureFormatMarkdown,
			UserAgent:       "bot/1",
			MaxBodyBytes:    1024,
		}, cfg)
	})

	t.Run("ignores blank and unknown keys", func(t *testing.T) {
		t.Parallel()

		cfg := pagescrape.DefaultConfig()
		err := cfg.ApplyEnv(map[string]string{
			pagescrape.EnvDir: "   ",
			"OTHER":           "x",
		})

		require.NoError(t, err)
		assert.Equal(t, pagescrape.DefaultConfig(), cfg)
	})

	t.Run("rejects bad duration", func(t *testing.T) {
		t.Parallel()

		cfg := pagescrape.DefaultConfig()
		err := cfg.ApplyEnv(map[string]string{pagescrape.EnvTimeout: "ten"})

		require.Error(t, err)
		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})

	t.Run("rejects bad integer", func(t *testing.T) {
		t.Parallel()

		cfg := pagescrape.DefaultConfig()
		err := cfg.ApplyEnv(map[string]string{pagescrape.EnvMaxBodyBytes: "lots"})

		require.Error(t, err)
		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*pagescrape.Config)
	}{
		{"zero timeout", func(c *pagescrape.Config) { c.Timeout = 0 }},
		{"negative timeout", func(c *pagescrape.Config) { c.Timeout = -time.Second }},
		{"empty dir", func(c *pagescrape.Config) { c.Dir = "" }},
		{"empty title selector", func(c *pagescrape.Config) { c.TitleSelector = " " }},
		{"empty feature selector", func(c *pagescrape.Config) { c.FeatureSelector = "" }},
		{"unknown format", func(c *pagescrape.Config) { c.FeatureFormat = "html" }},
		{"zero body limit", func(c *pagescrape.Config) { c.MaxBodyBytes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := pagescrape.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
		})
	}
}
