package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Recognized keys in the AWS shared credentials and config files.
const (
	keyAccessKeyID     = "aws_access_key_id"
	keySecretAccessKey = "aws_secret_access_key"
	keyRegion          = "region"
)

const bootstrapSkeleton = `[default]
aws_access_key_id = YOUR_ACCESS_KEY
aws_secret_access_key = YOUR_SECRET_KEY
`

// loadCredentials reads the credentials store fresh from disk. The file may
// be edited by other tools at any time, so nothing is cached.
func (r *Resolver) loadCredentials() (*ini.File, error) {
	if _, err := os.Stat(r.CredentialsPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, r.CredentialsPath)
	}
	f, err := ini.Load(r.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreCorrupt, r.CredentialsPath, err)
	}
	return f, nil
}

// loadConfig reads the region config store. A missing file is not an error:
// profiles can exist in credentials without any config entry.
func (r *Resolver) loadConfig() (*ini.File, error) {
	if _, err := os.Stat(r.ConfigPath); err != nil {
		return ini.Empty(), nil
	}
	f, err := ini.Load(r.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreCorrupt, r.ConfigPath, err)
	}
	return f, nil
}

// configSection maps a profile name to its config store section header.
// The AWS config file prefixes every section except "default".
func configSection(name string) string {
	if name == DefaultProfile {
		return DefaultProfile
	}
	return "profile " + name
}

func saveStore(f *ini.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("write store %s: %w", path, err)
	}
	return nil
}

// Bootstrap creates a skeleton credentials file with placeholder keys,
// for first-run setups where no store exists yet.
func (r *Resolver) Bootstrap() error {
	if _, err := os.Stat(r.CredentialsPath); err == nil {
		return fmt.Errorf("credentials store already exists at %s", r.CredentialsPath)
	}
	if err := os.MkdirAll(filepath.Dir(r.CredentialsPath), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	if err := os.WriteFile(r.CredentialsPath, []byte(bootstrapSkeleton), 0o600); err != nil {
		return fmt.Errorf("write credentials store: %w", err)
	}
	return nil
}
