package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRulesFlags(t *testing.T) {
	fs, flags := SetupRulesFlags()
	assert.Equal(t, FormatText, flags.Format)

	require.NoError(t, fs.Parse([]string{"--format", "json"}))
	assert.Equal(t, FormatJSON, flags.Format)
}

func TestHandleRules(t *testing.T) {
	assert.NoError(t, HandleRules([]string{}))
	assert.NoError(t, HandleRules([]string{"--format", "json"}))
	assert.NoError(t, HandleRules([]string{"--help"}))
}

func TestHandleRules_Errors(t *testing.T) {
	assert.Error(t, HandleRules([]string{"unexpected-arg"}))
	assert.Error(t, HandleRules([]string{"--format", "sarif"}))
	assert.Error(t, HandleRules([]string{"--format", "invalid"}))
}
