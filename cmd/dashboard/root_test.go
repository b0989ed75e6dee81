package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["render"])
	assert.True(t, names["notify"])

	f := notifyCmd.Flags().Lookup("allow-mock")
	if assert.NotNil(t, f) {
		assert.Equal(t, "false", f.DefValue)
	}
}
