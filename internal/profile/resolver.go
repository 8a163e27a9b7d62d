// Package profile resolves and switches the active AWS CLI profile and
// region from the shared credentials and config stores.
package profile

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Environment variables consumed during resolution and written on switch.
const (
	EnvProfile       = "AWS_PROFILE"
	EnvRegion        = "AWS_REGION"
	EnvDefaultRegion = "AWS_DEFAULT_REGION"
)

// PersistentEnvWriter applies the active profile/region to a mechanism
// future shells pick up. Implemented per platform in internal/envwriter.
type PersistentEnvWriter interface {
	Persist(profile, region string) error
}

// Resolver reads the credential and config stores and computes the active
// profile/region selection. Both stores are reloaded on every call; other
// tools (the AWS CLI, the console) edit them concurrently.
type Resolver struct {
	CredentialsPath string
	ConfigPath      string
	DefaultRegion   string
	Env             Environment
	Writer          PersistentEnvWriter // optional; nil skips persistence
}

// ListProfiles returns the entries of the credentials store in file order,
// with "default" hoisted to the front if present.
func (r *Resolver) ListProfiles() ([]Entry, error) {
	creds, err := r.loadCredentials()
	if err != nil {
		return nil, err
	}
	cfg, err := r.loadConfig()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, sec := range creds.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		entries = append(entries, Entry{
			Name:            sec.Name(),
			AccessKeyID:     sec.Key(keyAccessKeyID).String(),
			SecretAccessKey: sec.Key(keySecretAccessKey).String(),
			Region:          regionFrom(cfg, sec.Name(), r.DefaultRegion),
		})
	}

	for i := range entries {
		if entries[i].Name != DefaultProfile {
			continue
		}
		if i > 0 {
			def := entries[i]
			copy(entries[1:i+1], entries[0:i])
			entries[0] = def
		}
		break
	}

	return entries, nil
}

// ResolveActive computes the effective selection. Precedence for the
// profile: AWS_PROFILE, else "default". For the region: AWS_REGION, then
// AWS_DEFAULT_REGION, then the config store entry for the active profile,
// then the configured default. It never fails; unreadable stores degrade
// to the default region.
func (r *Resolver) ResolveActive() Selection {
	sel := Selection{
		Profile:       DefaultProfile,
		ProfileSource: SourceDefault,
	}
	if p, ok := r.Env.Lookup(EnvProfile); ok && p != "" {
		sel.Profile = p
		sel.ProfileSource = SourceEnvironment
	}

	for _, key := range []string{EnvRegion, EnvDefaultRegion} {
		if reg, ok := r.Env.Lookup(key); ok && reg != "" {
			sel.Region = reg
			sel.RegionSource = SourceEnvironment
			return sel
		}
	}

	sel.Region, sel.RegionSource = r.regionWithSource(sel.Profile)
	return sel
}

// RegionFor returns the region declared for a profile in the config store,
// or the configured default when the section, the key, or the whole file
// is absent.
func (r *Resolver) RegionFor(name string) string {
	region, _ := r.regionWithSource(name)
	return region
}

func (r *Resolver) regionWithSource(name string) (string, Source) {
	cfg, err := r.loadConfig()
	if err != nil {
		return r.DefaultRegion, SourceDefault
	}
	sec, err := cfg.GetSection(configSection(name))
	if err != nil {
		return r.DefaultRegion, SourceDefault
	}
	if !sec.HasKey(keyRegion) {
		return r.DefaultRegion, SourceDefault
	}
	return sec.Key(keyRegion).String(), SourceConfig
}

// SwitchTo activates a profile: the process environment is updated so
// in-process callers observe the change immediately, and the persistent
// writer records it for future shells. Switching to the already-active
// profile is a no-op that succeeds. The target must exist in the
// credentials store.
func (r *Resolver) SwitchTo(name string) (Selection, error) {
	creds, err := r.loadCredentials()
	if err != nil {
		return Selection{}, err
	}
	if _, err := creds.GetSection(name); err != nil {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	region := r.RegionFor(name)

	if err := r.Env.Set(EnvProfile, name); err != nil {
		return Selection{}, fmt.Errorf("set %s: %w", EnvProfile, err)
	}
	if err := r.Env.Set(EnvDefaultRegion, region); err != nil {
		return Selection{}, fmt.Errorf("set %s: %w", EnvDefaultRegion, err)
	}

	if r.Writer != nil {
		if err := r.Writer.Persist(name, region); err != nil {
			return Selection{}, fmt.Errorf("persist environment: %w", err)
		}
	}

	return Selection{
		Profile:       name,
		Region:        region,
		ProfileSource: SourceEnvironment,
		RegionSource:  SourceEnvironment,
	}, nil
}

// AddProfile appends a new entry to the credentials store and records its
// region in the config store. The two writes are independent whole-file
// rewrites; a crash in between leaves the profile without a region entry,
// which RegionFor tolerates.
func (r *Resolver) AddProfile(e Entry) error {
	creds, err := r.loadCredentials()
	if err != nil {
		return err
	}
	if _, err := creds.GetSection(e.Name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateProfile, e.Name)
	}

	sec, err := creds.NewSection(e.Name)
	if err != nil {
		return fmt.Errorf("add credentials section: %w", err)
	}
	if _, err := sec.NewKey(keyAccessKeyID, e.AccessKeyID); err != nil {
		return fmt.Errorf("add credentials key: %w", err)
	}
	if _, err := sec.NewKey(keySecretAccessKey, e.SecretAccessKey); err != nil {
		return fmt.Errorf("add credentials key: %w", err)
	}
	if err := saveStore(creds, r.CredentialsPath); err != nil {
		return err
	}

	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	region := e.Region
	if region == "" {
		region = r.DefaultRegion
	}
	cfg.Section(configSection(e.Name)).Key(keyRegion).SetValue(region)
	return saveStore(cfg, r.ConfigPath)
}

func regionFrom(cfg *ini.File, name, fallback string) string {
	sec, err := cfg.GetSection(configSection(name))
	if err != nil || !sec.HasKey(keyRegion) {
		return fallback
	}
	return sec.Key(keyRegion).String()
}
