package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(&Config{
		URI:            "mongodb://db.local:27017",
		ConnectTimeout: 3 * time.Second,
		MaxPoolSize:    4,
	})

	require.NotNil(t, opts.AppName)
	assert.Equal(t, appName, *opts.AppName)
	require.NotNil(t, opts.ConnectTimeout)
	assert.Equal(t, 3*time.Second, *opts.ConnectTimeout)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 3*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(4), *opts.MaxPoolSize)
	assert.Equal(t, []string{"db.local:27017"}, opts.Hosts)
}

func TestClientOptions_ZeroLimitsKeepDriverDefaults(t *testing.T) {
	opts := clientOptions(&Config{URI: "mongodb://localhost:27017"})

	assert.Nil(t, opts.ConnectTimeout)
	assert.Nil(t, opts.MaxPoolSize)
}
