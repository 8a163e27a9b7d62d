package profile

// DefaultProfile is the profile name the AWS CLI falls back to.
const DefaultProfile = "default"

// Entry represents one named credential set from the credentials store.
type Entry struct {
	Name            string
	AccessKeyID     string
	SecretAccessKey string
	Region          string // resolved from the config store, or the default region
}

// MaskedKeyID returns the access key id with the middle blanked out,
// safe for listings and logs.
func (e Entry) MaskedKeyID() string {
	if len(e.AccessKeyID) <= 8 {
		if e.AccessKeyID == "" {
			return "-"
		}
		return "****"
	}
	return e.AccessKeyID[:4] + "****" + e.AccessKeyID[len(e.AccessKeyID)-4:]
}

// Source tells where a resolved value came from.
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceConfig      Source = "config store"
	SourceDefault     Source = "default"
)

// Selection is the profile/region pair currently in effect.
type Selection struct {
	Profile       string
	Region        string
	ProfileSource Source
	RegionSource  Source
}
