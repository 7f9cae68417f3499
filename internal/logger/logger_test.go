package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamed(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		log, err := NewNamed(env, "service-shelter-web")
		require.NoError(t, err, env)
		assert.NotNil(t, log)
	}
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, isDevelopment("Development"))
	assert.True(t, isDevelopment(" dev "))
	assert.False(t, isDevelopment("production"))
	assert.False(t, isDevelopment(""))
}
