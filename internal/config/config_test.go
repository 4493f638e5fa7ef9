package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {

	type test struct {
		content string
		check   func(t *testing.T, cfg *Config)
		err     bool
	}

	tests := map[string]test{
		"partial-override": {
			content: `
data: corpus.csv
split:
  limit_ngrams: 10
  drop_languages: [fr, de]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "corpus.csv", cfg.Data)
				assert.Equal(t, 10, cfg.Split.LimitNgrams)
				assert.Equal(t, []string{"fr", "de"}, cfg.Split.DropLanguages)
				assert.Equal(t, 0.25, cfg.Split.TestSize)
				assert.Equal(t, int64(42), cfg.Split.RandomState)
				assert.Equal(t, "splits", cfg.Output)
			},
		},
		"full": {
			content: `
data: a.csv
output: out
split:
  drop_features: [id]
  test_size: 0.2
  random_state: 0
  stratify: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "out", cfg.Output)
				assert.Equal(t, []string{"id"}, cfg.Split.DropFeatures)
				assert.Equal(t, 0.2, cfg.Split.TestSize)
				assert.Equal(t, int64(0), cfg.Split.RandomState)
				assert.True(t, cfg.Split.Stratify)
			},
		},
		"malformed": {
			content: "split: [",
			err:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := Load(path)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestDefault_RequiresData(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Data)
	assert.Equal(t, 0.25, cfg.Split.TestSize)
	assert.Equal(t, int64(42), cfg.Split.RandomState)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ShippedConfigLeavesDataUnset(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "config.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Data)
	assert.Equal(t, "splits", cfg.Output)
}
