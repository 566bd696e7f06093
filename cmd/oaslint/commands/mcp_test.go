package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMcp_Help(t *testing.T) {
	assert.NoError(t, HandleMcp([]string{"--help"}))
}

func TestSetupMcpFlags_Usage(t *testing.T) {
	fs := SetupMcpFlags()
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.Usage()

	require.Contains(t, buf.String(), "MCP")
	assert.Contains(t, buf.String(), "OASLINT_LINT_LIMIT")
}

func TestHandleMcp_UnknownFlag(t *testing.T) {
	assert.Error(t, HandleMcp([]string{"--bogus"}))
}
