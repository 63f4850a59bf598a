package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "ethereum", cfg.Network)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 250, cfg.IntervalMS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid ethereum",
			mutate: func(c *Config) { c.Pattern = "dead*" },
		},
		{
			name:   "network is case-insensitive",
			mutate: func(c *Config) { c.Pattern = "dead*"; c.Network = "Bitcoin" },
		},
		{
			name:    "missing pattern",
			mutate:  func(c *Config) {},
			wantErr: ErrNoPattern,
		},
		{
			name:    "unknown network",
			mutate:  func(c *Config) { c.Pattern = "dead*"; c.Network = "dogecoin" },
			wantErr: ErrUnknownNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	cfg := New()
	cfg.IntervalMS = 100
	assert.Equal(t, 100*time.Millisecond, cfg.Interval())
}
