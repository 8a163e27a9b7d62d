package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCredentials = `[staging]
aws_access_key_id = AKIASTAGINGKEY00001
aws_secret_access_key = staging-secret

[default]
aws_access_key_id = AKIADEFAULTKEY00001
aws_secret_access_key = default-secret

[prod]
aws_access_key_id = AKIAPRODKEY0000001
aws_secret_access_key = prod-secret
`

const testConfig = `[default]
region = us-east-1

[profile staging]
region = eu-central-1

[profile prod]
region = ap-southeast-1
`

type recordingWriter struct {
	profile string
	region  string
	calls   int
}

func (w *recordingWriter) Persist(profile, region string) error {
	w.profile = profile
	w.region = region
	w.calls++
	return nil
}

func newTestResolver(t *testing.T, credentials, config string) *Resolver {
	t.Helper()
	dir := t.TempDir()

	r := &Resolver{
		CredentialsPath: filepath.Join(dir, "credentials"),
		ConfigPath:      filepath.Join(dir, "config"),
		DefaultRegion:   "us-west-2",
		Env:             MapEnv{},
	}
	if credentials != "" {
		require.NoError(t, os.WriteFile(r.CredentialsPath, []byte(credentials), 0o600))
	}
	if config != "" {
		require.NoError(t, os.WriteFile(r.ConfigPath, []byte(config), 0o600))
	}
	return r
}

func TestListProfilesHoistsDefault(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)

	profiles, err := r.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	assert.Equal(t, "default", profiles[0].Name)
	assert.Equal(t, "staging", profiles[1].Name)
	assert.Equal(t, "prod", profiles[2].Name)

	assert.Equal(t, "us-east-1", profiles[0].Region)
	assert.Equal(t, "eu-central-1", profiles[1].Region)
	assert.Equal(t, "ap-southeast-1", profiles[2].Region)
}

func TestListProfilesMissingStore(t *testing.T) {
	r := newTestResolver(t, "", "")

	_, err := r.ListProfiles()
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestListProfilesCorruptStore(t *testing.T) {
	r := newTestResolver(t, "[broken\naws_access_key_id", "")

	_, err := r.ListProfiles()
	require.ErrorIs(t, err, ErrStoreCorrupt)
}

func TestListProfilesWithoutConfigStore(t *testing.T) {
	r := newTestResolver(t, testCredentials, "")

	profiles, err := r.ListProfiles()
	require.NoError(t, err)
	for _, p := range profiles {
		assert.Equal(t, "us-west-2", p.Region, "profile %s should fall back to the default region", p.Name)
	}
}

func TestResolveActiveEnvProfileWithConfigRegion(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)
	r.Env = MapEnv{"AWS_PROFILE": "staging"}

	sel := r.ResolveActive()
	assert.Equal(t, "staging", sel.Profile)
	assert.Equal(t, SourceEnvironment, sel.ProfileSource)
	assert.Equal(t, "eu-central-1", sel.Region)
	assert.Equal(t, SourceConfig, sel.RegionSource)
}

func TestResolveActiveEnvProfileWithoutConfigEntry(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)
	r.Env = MapEnv{"AWS_PROFILE": "team-x"}

	sel := r.ResolveActive()
	assert.Equal(t, "team-x", sel.Profile)
	assert.Equal(t, "us-west-2", sel.Region)
	assert.Equal(t, SourceDefault, sel.RegionSource)
}

func TestResolveActiveRegionPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		env        MapEnv
		wantRegion string
		wantSource Source
	}{
		{
			name:       "AWS_REGION wins over everything",
			env:        MapEnv{"AWS_REGION": "sa-east-1", "AWS_DEFAULT_REGION": "ca-central-1"},
			wantRegion: "sa-east-1",
			wantSource: SourceEnvironment,
		},
		{
			name:       "AWS_DEFAULT_REGION wins over config",
			env:        MapEnv{"AWS_DEFAULT_REGION": "ca-central-1"},
			wantRegion: "ca-central-1",
			wantSource: SourceEnvironment,
		},
		{
			name:       "config region for the active profile",
			env:        MapEnv{},
			wantRegion: "us-east-1",
			wantSource: SourceConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, testCredentials, testConfig)
			r.Env = tt.env

			sel := r.ResolveActive()
			assert.Equal(t, tt.wantRegion, sel.Region)
			assert.Equal(t, tt.wantSource, sel.RegionSource)
		})
	}
}

func TestResolveActiveNoSignals(t *testing.T) {
	r := newTestResolver(t, "", "")

	sel := r.ResolveActive()
	assert.Equal(t, "default", sel.Profile)
	assert.Equal(t, SourceDefault, sel.ProfileSource)
	assert.Equal(t, "us-west-2", sel.Region)
	assert.Equal(t, SourceDefault, sel.RegionSource)
}

func TestRegionForSectionWithoutRegionKey(t *testing.T) {
	r := newTestResolver(t, testCredentials, "[profile staging]\noutput = json\n")

	assert.Equal(t, "us-west-2", r.RegionFor("staging"))
}

func TestRegionForMissingConfigStore(t *testing.T) {
	r := newTestResolver(t, testCredentials, "")

	assert.Equal(t, "us-west-2", r.RegionFor("prod"))
}

func TestSwitchTo(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)
	w := &recordingWriter{}
	r.Writer = w

	sel, err := r.SwitchTo("prod")
	require.NoError(t, err)
	assert.Equal(t, "prod", sel.Profile)
	assert.Equal(t, "ap-southeast-1", sel.Region)

	// In-process callers observe the switch immediately.
	active := r.ResolveActive()
	assert.Equal(t, "prod", active.Profile)
	assert.Equal(t, "ap-southeast-1", active.Region)

	assert.Equal(t, "prod", w.profile)
	assert.Equal(t, "ap-southeast-1", w.region)
	assert.Equal(t, 1, w.calls)
}

func TestSwitchToIdempotent(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)
	r.Writer = &recordingWriter{}

	first, err := r.SwitchTo("staging")
	require.NoError(t, err)
	second, err := r.SwitchTo("staging")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, r.ResolveActive())
}

func TestSwitchToUnknownProfile(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)
	env := MapEnv{}
	r.Env = env

	_, err := r.SwitchTo("typo")
	require.ErrorIs(t, err, ErrUnknownProfile)

	_, ok := env["AWS_PROFILE"]
	assert.False(t, ok, "a failed switch must not touch the environment")
}

func TestAddProfile(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)

	err := r.AddProfile(Entry{
		Name:            "team-a",
		AccessKeyID:     "AKIATEAMAKEY000001",
		SecretAccessKey: "team-a-secret",
		Region:          "eu-west-1",
	})
	require.NoError(t, err)

	profiles, err := r.ListProfiles()
	require.NoError(t, err)
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	assert.Contains(t, names, "team-a")
	assert.Equal(t, "eu-west-1", r.RegionFor("team-a"))
}

func TestAddProfileDuplicate(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)

	entry := Entry{Name: "team-a", AccessKeyID: "AKIA1", SecretAccessKey: "s1", Region: "eu-west-1"}
	require.NoError(t, r.AddProfile(entry))

	before, err := r.ListProfiles()
	require.NoError(t, err)

	err = r.AddProfile(Entry{Name: "team-a", AccessKeyID: "AKIA2", SecretAccessKey: "s2", Region: "sa-east-1"})
	require.ErrorIs(t, err, ErrDuplicateProfile)

	after, err := r.ListProfiles()
	require.NoError(t, err)
	assert.Equal(t, before, after, "a rejected add must leave both stores unchanged")
	assert.Equal(t, "eu-west-1", r.RegionFor("team-a"))
}

func TestAddProfileRegionFallback(t *testing.T) {
	r := newTestResolver(t, testCredentials, testConfig)

	require.NoError(t, r.AddProfile(Entry{
		Name:            "team-b",
		AccessKeyID:     "AKIATEAMBKEY000001",
		SecretAccessKey: "team-b-secret",
	}))

	assert.Equal(t, "us-west-2", r.RegionFor("team-b"))
}

func TestAddProfileMissingStore(t *testing.T) {
	r := newTestResolver(t, "", "")

	err := r.AddProfile(Entry{Name: "team-a", AccessKeyID: "AKIA1", SecretAccessKey: "s1"})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestBootstrap(t *testing.T) {
	r := newTestResolver(t, "", "")

	require.NoError(t, r.Bootstrap())

	profiles, err := r.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "default", profiles[0].Name)

	require.Error(t, r.Bootstrap(), "bootstrapping over an existing store must fail")
}

func TestMaskedKeyID(t *testing.T) {
	assert.Equal(t, "AKIA****1234", Entry{AccessKeyID: "AKIAEXAMPLEKEY1234"}.MaskedKeyID())
	assert.Equal(t, "****", Entry{AccessKeyID: "short"}.MaskedKeyID())
	assert.Equal(t, "-", Entry{}.MaskedKeyID())
}
