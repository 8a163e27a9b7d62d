package profile

import "errors"

var (
	// ErrStoreUnavailable means the credentials file does not exist.
	// Callers may offer to bootstrap one.
	ErrStoreUnavailable = errors.New("credentials store unavailable")

	// ErrStoreCorrupt means a store file exists but could not be parsed.
	ErrStoreCorrupt = errors.New("store corrupt")

	// ErrDuplicateProfile means an add collided with an existing name.
	ErrDuplicateProfile = errors.New("profile already exists")

	// ErrUnknownProfile means a switch targeted a name not present in
	// the credentials store.
	ErrUnknownProfile = errors.New("unknown profile")
)
