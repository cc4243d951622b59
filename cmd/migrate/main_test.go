package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"up", "down", "status", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
		assert.NotNil(t, cmd.RunE)
	}
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"up", "extra"})

	assert.Error(t, root.Execute())
}
