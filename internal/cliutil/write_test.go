package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "found %d violation(s) in %s\n", 3, "paths/teams.yaml")
	assert.Equal(t, "found 3 violation(s) in paths/teams.yaml\n", buf.String())
}
