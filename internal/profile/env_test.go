package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnv(t *testing.T) {
	env := ProcessEnv()

	t.Setenv("AWSCTX_TEST_VAR", "from-process")
	v, ok := env.Lookup("AWSCTX_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "from-process", v)

	require.NoError(t, env.Set("AWSCTX_TEST_VAR", "updated"))
	v, _ = env.Lookup("AWSCTX_TEST_VAR")
	assert.Equal(t, "updated", v)
}

func TestMapEnv(t *testing.T) {
	env := MapEnv{}

	_, ok := env.Lookup("MISSING")
	assert.False(t, ok)

	require.NoError(t, env.Set("KEY", "value"))
	v, ok := env.Lookup("KEY")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}
