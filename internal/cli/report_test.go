package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nixpig/anoabi/internal/abi"
)

func TestReportCmd(t *testing.T) {
	cmd := reportCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.NoError(t, err)

	var entries []struct {
		Name   string `json:"name"`
		Source string `json:"source"`
		Kind   string `json:"kind"`
		Holds  bool   `json:"holds"`
	}
	assert.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Len(t, entries, len(abi.Assumptions()))

	for _, entry := range entries {
		assert.True(t, entry.Holds, "assumption %q does not hold", entry.Name)
	}
}

func TestReportCmdFailedOnly(t *testing.T) {
	cmd := reportCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--failed"})

	err := cmd.Execute()
	assert.NoError(t, err)

	var entries []json.RawMessage
	assert.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Empty(t, entries)
}
