package profile

import "os"

// Environment is the process-environment capability the resolver reads and
// writes through. Keeping it explicit makes resolution a function of its
// inputs instead of ambient globals.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

type processEnv struct{}

// ProcessEnv returns an Environment backed by the real process environment.
func ProcessEnv() Environment { return processEnv{} }

func (processEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

func (processEnv) Set(key, value string) error { return os.Setenv(key, value) }

// MapEnv is an in-memory Environment for tests and dry runs.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Set(key, value string) error {
	m[key] = value
	return nil
}
