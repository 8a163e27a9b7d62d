// Package envwriter persists the active profile/region to user-level
// environment storage so new shells inherit them.
package envwriter

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

const (
	batchName  = "set_aws_profile.bat"
	scriptName = "env.sh"
)

// ScriptWriter generates the platform helper that applies AWS_PROFILE and
// AWS_DEFAULT_REGION to future shells. On Windows it writes a batch file
// using setx and runs it; elsewhere it writes a sourceable snippet that a
// shell profile picks up.
type ScriptWriter struct {
	Dir   string // directory the helper is written into
	NoRun bool   // skip executing the helper (Windows only ever runs it)

	goos string // overridable for tests
}

// NewScriptWriter returns a writer targeting the current platform.
func NewScriptWriter(dir string) *ScriptWriter {
	return &ScriptWriter{Dir: dir, goos: runtime.GOOS}
}

// Persist writes the helper for the given selection and, on Windows,
// executes it so the user-level variables are set immediately.
func (w *ScriptWriter) Persist(profile, region string) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create helper directory: %w", err)
	}

	if w.goos == "windows" {
		path := filepath.Join(w.Dir, batchName)
		content := fmt.Sprintf("@echo off\r\n"+
			"echo Setting AWS profile to %s...\r\n"+
			"setx AWS_PROFILE %s\r\n"+
			"setx AWS_DEFAULT_REGION %s\r\n"+
			"echo Profile set to %s (%s)\r\n",
			profile, profile, region, profile, region)
		if err := os.WriteFile(path, []byte(content), 0o700); err != nil {
			return fmt.Errorf("write helper script: %w", err)
		}
		if w.NoRun {
			return nil
		}
		if err := exec.Command("cmd", "/C", path).Run(); err != nil {
			return fmt.Errorf("run helper script: %w", err)
		}
		return nil
	}

	path := filepath.Join(w.Dir, scriptName)
	content := fmt.Sprintf("#!/bin/sh\n"+
		"# Written by awsctx on every profile switch. Source it from your\n"+
		"# shell profile to inherit the selection in new shells.\n"+
		"export AWS_PROFILE=%s\n"+
		"export AWS_DEFAULT_REGION=%s\n",
		profile, region)
	if err := os.WriteFile(path, []byte(content), 0o700); err != nil {
		return fmt.Errorf("write helper script: %w", err)
	}
	return nil
}

// ScriptPath returns where the helper for the current platform lives.
func (w *ScriptWriter) ScriptPath() string {
	if w.goos == "windows" {
		return filepath.Join(w.Dir, batchName)
	}
	return filepath.Join(w.Dir, scriptName)
}
