package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategy-cli/internal/render"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"generate", "questions", "serve", "runs", "batch"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "strategy-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_FormatFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("format")
	require.NotNil(t, flag, "root should have a persistent --format flag")
	assert.Equal(t, "json", flag.DefValue)
	assert.Equal(t, "f", flag.Shorthand)

	for _, c := range []*cobra.Command{generateCmd, batchCmd, runsShowCmd} {
		assert.NotNil(t, c.InheritedFlags().Lookup("format"), "%s should inherit --format", c.Name())
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	prevCfg, prevFormat := cfg, outputFormat
	t.Cleanup(func() {
		cfg, outputFormat = prevCfg, prevFormat
		formatFlag = string(render.FormatJSON)
	})

	formatFlag = "docx"
	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	formatFlag = "md"
	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	assert.Equal(t, render.FormatMarkdown, outputFormat)
}

func TestGenerateCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "advanced", "out"} {
		assert.NotNil(t, generateCmd.Flags().Lookup(name), "generate should have --%s flag", name)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestRunsCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range runsCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"list", "show", "stats"} {
		assert.True(t, names[name], "runs should have subcommand %q", name)
	}
}

func TestBatchCommand_Flags(t *testing.T) {
	for _, name := range []string{"advanced", "out-dir"} {
		assert.NotNil(t, batchCmd.Flags().Lookup(name), "batch should have --%s flag", name)
	}
}
