package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/stemmap/internal/view"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	// Collect subcommand names.
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	// Verify expected subcommands are registered.
	expected := []string{"serve", "view", "regions", "categories", "validate"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "stemmap", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestViewCommand_Flags(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"category", view.AllCategories},
		{"region", ""},
		{"format", "table"},
	}
	for _, tt := range tests {
		flag := viewCmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, "view should have --%s flag", tt.name)
		assert.Equal(t, tt.def, flag.DefValue)
	}
}
