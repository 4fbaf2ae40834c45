package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    int
		wantErr bool
	}{
		{"unset uses default", "", false, 42, false},
		{"empty uses default", "", true, 42, false},
		{"valid", "100", true, 100, false},
		{"zero rejected", "0", true, 0, true},
		{"negative rejected", "-10", true, 0, true},
		{"float rejected", "42.5", true, 0, true},
		{"garbage rejected", "lots", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_INT_VAR", tt.value)
			}
			got, err := getPositiveInt("TEST_INT_VAR", 42)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_INT_VAR")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    time.Duration
		wantErr bool
	}{
		{"unset uses default", "", false, time.Minute, false},
		{"minutes", "15m", true, 15 * time.Minute, false},
		{"compound", "1h30m", true, 90 * time.Minute, false},
		{"bare number rejected", "30", true, 0, true},
		{"zero rejected", "0s", true, 0, true},
		{"negative rejected", "-5m", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_DURATION_VAR", tt.value)
			}
			got, err := getDuration("TEST_DURATION_VAR", time.Minute)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, splitList(" 10.0.0.1, ,10.0.0.2 "))
}
