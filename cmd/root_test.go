package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"serve", "export", "user", "dataset"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "projectmap", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestExportCommand_Flags(t *testing.T) {
	require.NotNil(t, exportCmd.Flags().Lookup("project"), "export command should have --project flag")

	out := exportCmd.Flags().Lookup("output")
	require.NotNil(t, out, "export command should have --output flag")
	assert.Equal(t, "o", out.Shorthand)
}

func TestUserCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range userCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"add", "list"} {
		assert.True(t, names[name], "user should have subcommand %q", name)
	}
}

func TestUserAddCommand_Flags(t *testing.T) {
	flag := userAddCmd.Flags().Lookup("password")
	require.NotNil(t, flag, "user add should have --password flag")
}

func TestDatasetCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range datasetCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"list", "activate", "upload"} {
		assert.True(t, names[name], "dataset should have subcommand %q", name)
	}
}
