package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type cliTestEnv struct {
	baseDir    string
	logDir     string
	configPath string
}

// setupCLITestEnv isolates HOME and environment overrides, then writes a
// config with the given format and trace flag.
func setupCLITestEnv(t *testing.T, format string, trace bool) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	require.NoError(t, os.MkdirAll(homeDir, 0o755))
	t.Setenv("HOME", homeDir)
	t.Setenv("RECORDGROUP_LOG_LEVEL", "")
	t.Setenv("RECORDGROUP_TRACE", "")

	env := &cliTestEnv{
		baseDir:    base,
		logDir:     filepath.Join(base, "logs"),
		configPath: filepath.Join(homeDir, ".config", "recordgroup", "config.toml"),
	}
	require.NoError(t, os.MkdirAll(env.logDir, 0o755))
	writeTestConfig(t, env.configPath, fmt.Sprintf(
		"[logging]\nformat = %q\nlevel = \"info\"\ndir = %q\n\n[trace]\nenabled = %t\n",
		format, env.logDir, trace,
	))
	return env
}

func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
