package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML, FormatSARIF} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestOutputStructured(t *testing.T) {
	data := struct {
		Name  string `json:"name" yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}{Name: "oaslint", Count: 7}

	var buf bytes.Buffer
	require.NoError(t, OutputStructured(&buf, data, FormatJSON))
	assert.Contains(t, buf.String(), `"name": "oaslint"`)

	buf.Reset()
	require.NoError(t, OutputStructured(&buf, data, FormatYAML))
	assert.Contains(t, buf.String(), "count: 7")

	assert.Error(t, OutputStructured(&buf, data, FormatText))
}
