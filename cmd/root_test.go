package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Exists verifies the root command is set up.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd, "Root command should exist")
	assert.Equal(t, "mibigtaxa", rootCmd.Use,
		"Command name should be mibigtaxa")
}

// TestRootCmd_Subcommands verifies all subcommands are registered.
func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{
		"build", "name", "lineage", "class", "export",
	} {
		assert.True(t, names[want],
			"Subcommand %s should be registered", want)
	}
}

// TestRootCmd_HasPreRun verifies bootstrap function is set.
func TestRootCmd_HasPreRun(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
}

// TestRootCmd_ErrorSilencing verifies error and usage silencing.
func TestRootCmd_ErrorSilencing(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors,
		"Errors should be silenced")
	assert.True(t, rootCmd.SilenceUsage,
		"Usage should be silenced on errors")
}

// TestRootCmd_VersionTemplate verifies the custom version template.
func TestRootCmd_VersionTemplate(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--version"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "version:",
		"Version output should contain version line")
	// Custom template drops the "mibigtaxa version" prefix.
	assert.NotContains(t, output, "mibigtaxa version:",
		"Should use custom version template")
}

// TestParseTaxonID verifies CLI argument conversion.
func TestParseTaxonID(t *testing.T) {
	tests := []struct {
		msg    string
		arg    string
		id     int
		hasErr bool
	}{
		{msg: "valid", arg: "9606", id: 9606},
		{msg: "zero", arg: "0", id: 0},
		{msg: "negative", arg: "-5", hasErr: true},
		{msg: "not a number", arg: "Homo", hasErr: true},
		{msg: "empty", arg: "", hasErr: true},
	}

	for _, v := range tests {
		id, err := parseTaxonID(v.arg)
		if v.hasErr {
			assert.Error(t, err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.id, id, v.msg)
	}
}
