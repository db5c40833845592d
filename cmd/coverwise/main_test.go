package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAllFlagRegistered(t *testing.T) {
	for _, cmd := range []*cobra.Command{recommendCmd, analyzeCmd} {
		flag := cmd.Flags().Lookup("show-all")
		require.NotNil(t, flag, "%s command should expose --show-all", cmd.Name())
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestAnalysisCommandsShareCommonFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{recommendCmd, magiCmd, hsaCmd, analyzeCmd} {
		format := cmd.Flags().Lookup("format")
		require.NotNil(t, format, "%s command should expose --format", cmd.Name())
		assert.Equal(t, "table", format.DefValue)
		assert.NotNil(t, cmd.Flags().Lookup("debug"), "%s command should expose --debug", cmd.Name())
	}
}
