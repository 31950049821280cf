package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCmd(t *testing.T) {
	cmd := verifyCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "assumptions hold")
}

func TestVerifyCmdRejectsArgs(t *testing.T) {
	cmd := verifyCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	err := cmd.Execute()
	assert.Error(t, err)
}
