package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"socialapi/config"
)

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(config.DatabaseConfig{Driver: "postgres", DSN: "postgres://localhost/social"})
	require.NoError(t, err)
	require.Equal(t, "postgres", d.Name())

	d, err = dialectorFor(config.DatabaseConfig{Driver: "sqlite", Path: "social.db"})
	require.NoError(t, err)
	require.Equal(t, "sqlite", d.Name())

	_, err = dialectorFor(config.DatabaseConfig{Driver: "memory"})
	require.Error(t, err)
}

func TestNew_RejectsMemoryDriver(t *testing.T) {
	_, err := New(config.DatabaseConfig{Driver: "memory"})
	require.ErrorContains(t, err, "no SQL dialect")
}
