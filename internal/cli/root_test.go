package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd(t *testing.T) {
	cmd := RootCmd()

	assert.Equal(t, "anoabi", cmd.Use)

	logFlag := cmd.Flag("log")
	assert.NotNil(t, logFlag)
	assert.Equal(t, "l", logFlag.Shorthand)

	debugFlag := cmd.Flag("debug")
	assert.NotNil(t, debugFlag)
	assert.Equal(t, "d", debugFlag.Shorthand)

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["verify"])
	assert.True(t, subcommands["report"])
}
