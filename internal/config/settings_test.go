package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSettings = `{
  "credentials_path": "$AWSCTX_TEST_HOME/.aws/credentials",
  "config_path": "$AWSCTX_TEST_HOME/.aws/config",
  "default_region": "eu-west-1",
  "favorites": [
    {"name": "prod", "color": "red", "region": "ap-southeast-1"},
    {"name": "staging", "color": "green", "region": "eu-central-1"}
  ]
}`

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWSCTX_TEST_HOME", "/home/dev")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(testSettings), 0o644))

	s, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/dev", ".aws", "credentials"), s.CredentialsPath)
	assert.Equal(t, filepath.Join("/home/dev", ".aws", "config"), s.ConfigPath)
	assert.Equal(t, "eu-west-1", s.DefaultRegion)
	require.Len(t, s.Favorites, 2)
	assert.Equal(t, "red", s.Favorites[0].Color)
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", s.DefaultRegion)
	assert.Contains(t, s.CredentialsPath, filepath.Join(".aws", "credentials"))
	assert.Empty(t, s.Favorites)
}

func TestLoadFromCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644))

	_, err := LoadFrom(dir)
	require.Error(t, err)
}

func TestFavoriteFor(t *testing.T) {
	s := &Settings{Favorites: []Favorite{{Name: "prod", Color: "red"}}}

	fav := s.FavoriteFor("prod")
	require.NotNil(t, fav)
	assert.Equal(t, "red", fav.Color)

	assert.Nil(t, s.FavoriteFor("missing"))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("AWSCTX_TEST_VAR", "/opt/aws")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unix style var", "$AWSCTX_TEST_VAR/credentials", "/opt/aws/credentials"},
		{"windows style var", "%AWSCTX_TEST_VAR%/credentials", "/opt/aws/credentials"},
		{"unset windows var kept", "%AWSCTX_UNSET_VAR%/credentials", "%AWSCTX_UNSET_VAR%/credentials"},
		{"plain path untouched", "/etc/aws/credentials", "/etc/aws/credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".aws", "credentials"), ExpandPath("~/.aws/credentials"))
	assert.Equal(t, home, ExpandPath("~"))
}
