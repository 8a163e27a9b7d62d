// Package config loads the awsctx settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Favorite tags a profile for presentation: a star in listings and a color
// in the selector. It has no effect on resolution.
type Favorite struct {
	Name   string `mapstructure:"name"`
	Color  string `mapstructure:"color"`
	Region string `mapstructure:"region"`
}

// Settings is the schema of config.json.
type Settings struct {
	CredentialsPath string     `mapstructure:"credentials_path"`
	ConfigPath      string     `mapstructure:"config_path"`
	DefaultRegion   string     `mapstructure:"default_region"`
	Favorites       []Favorite `mapstructure:"favorites"`
}

// FavoriteFor returns the favorite entry for a profile name, or nil.
func (s *Settings) FavoriteFor(name string) *Favorite {
	for i := range s.Favorites {
		if s.Favorites[i].Name == name {
			return &s.Favorites[i]
		}
	}
	return nil
}

// Dir returns the settings directory (~/.config/awsctx).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".awsctx"
	}
	return filepath.Join(home, ".config", "awsctx")
}

// Load reads settings from the default directory.
func Load() (*Settings, error) {
	return LoadFrom(Dir())
}

// LoadFrom reads config.json from dir, applying defaults and AWSCTX_*
// environment overrides. A missing file yields the defaults.
func LoadFrom(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("AWSCTX")
	v.AutomaticEnv()

	v.SetDefault("credentials_path", filepath.Join("~", ".aws", "credentials"))
	v.SetDefault("config_path", filepath.Join("~", ".aws", "config"))
	v.SetDefault("default_region", "us-east-1")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	s.CredentialsPath = ExpandPath(s.CredentialsPath)
	s.ConfigPath = ExpandPath(s.ConfigPath)
	return &s, nil
}

var winVarRe = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

// ExpandPath expands %VAR%, $VAR, and a leading ~ in a path template.
// Unset %VAR% tokens are left in place, matching expandvars behavior.
func ExpandPath(p string) string {
	p = winVarRe.ReplaceAllStringFunc(p, func(m string) string {
		if v, ok := os.LookupEnv(m[1 : len(m)-1]); ok {
			return v
		}
		return m
	})
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimLeft(p[1:], `/\`))
		}
	}
	return p
}
