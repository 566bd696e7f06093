package genrunner

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/linterrors"
)

func TestRunConfigErrors(t *testing.T) {
	r := New()
	r.Command = ""
	err := r.Run(context.Background(), "openapi.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, linterrors.ErrConfig)

	r = New()
	err = r.Run(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, linterrors.ErrConfig)
}

func TestRunMissingExecutable(t *testing.T) {
	r := New()
	r.Command = "oaslint-test-no-such-generator"
	err := r.Run(context.Background(), "openapi.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, linterrors.ErrConfig)

	var cfgErr *linterrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "command", cfgErr.Option)
	assert.Contains(t, cfgErr.Error(), "not found on PATH")
}

func TestRunInvokesCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX echo binary")
	}

	var stdout bytes.Buffer
	r := New()
	r.Command = "echo"
	r.Args = []string{"generating"}
	r.Stdout = &stdout

	require.NoError(t, r.Run(context.Background(), "openapi.yaml"))
	assert.Equal(t, "generating openapi.yaml\n", stdout.String())
}
