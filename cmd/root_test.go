/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stagehand-io/stagehand/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findCommand returns the registered subcommand with the given name
func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

// testConfig is a complete configuration file used across command tests
const testConfig = `
app:
  name: svc
  displayName: Service
  sourceDir: .
  containerPort: 3000
  healthCheckPath: /health
  registryName: svc
  clusterSuffix: cluster
  serviceName: svc-service
  taskFamily: svc-task
  loadBalancerName: svc-alb
  targetGroupName: svc-tg
  buildCommands:
    - npm ci
    - npm run build
  dockerBuildArgs:
    NODE_ENV: production

stages:
  beta: {}
  prod:
    app:
      containerPort: 8080
`

// writeTestConfig writes the test configuration to a temp file and returns its path
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stagehand.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

// executeCommand runs rootCmd with args and returns captured stdout and stderr
func executeCommand(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "stagehand", rootCmd.Use)
	assert.Equal(t, "A command-line tool for resolving stage configuration and AWS resource names", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	assert.Contains(t, rootCmd.Long, "Stagehand is a CLI tool")
	assert.Contains(t, rootCmd.Long, "Stage-specific override merging")
	assert.Contains(t, rootCmd.Long, "Deterministic AWS resource name generation")
	assert.Contains(t, rootCmd.Long, "without touching any infrastructure")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "stagehand.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Contains(t, configFlag.Usage, "configuration file")

	regionFlag := flags.Lookup("region")
	require.NotNil(t, regionFlag)
	assert.Equal(t, "", regionFlag.DefValue)

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	noColorFlag := flags.Lookup("no-color")
	require.NotNil(t, noColorFlag)
	assert.Equal(t, "false", noColorFlag.DefValue)
}

func TestRootCmd_Help(t *testing.T) {
	out, _, err := executeCommand("--help")

	require.NoError(t, err)
	assert.Contains(t, out, "stagehand")
	assert.Contains(t, out, "Stagehand is a CLI tool")
	assert.Contains(t, out, "Flags:")
	assert.Contains(t, out, "--config")
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "resolve")
	assert.Contains(t, out, "validate")
}

func TestRootCmd_Version(t *testing.T) {
	var buf bytes.Buffer

	// Fresh command instance to avoid state issues
	cmd := &cobra.Command{
		Use:     "stagehand",
		Version: version.Short(),
		Short:   "A command-line tool for resolving stage configuration and AWS resource names",
	}
	cmd.SetVersionTemplate(version.Info() + "\n")
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "stagehand")
	assert.Contains(t, output, "Git commit:")
	assert.Contains(t, output, "Build date:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "Platform:")
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, _, err := executeCommand()

	require.NoError(t, err)
	assert.Contains(t, out, "stagehand")
	assert.Contains(t, out, "Available Commands:")
}

func TestRootCmd_InvalidFlag(t *testing.T) {
	out, errOut, err := executeCommand("--invalid-flag")

	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(out+errOut), "unknown flag")
}

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"resolve", "names", "validate", "stages", "version"} {
		assert.NotNil(t, findCommand(rootCmd, name), "%s command should be registered", name)
	}
}

func TestRootCmd_FlagInheritance(t *testing.T) {
	resolveCmd := findCommand(rootCmd, "resolve")
	require.NotNil(t, resolveCmd)

	inherited := resolveCmd.InheritedFlags()
	assert.NotNil(t, inherited.Lookup("config"))
	assert.NotNil(t, inherited.Lookup("no-color"))
}
