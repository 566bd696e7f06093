package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oaslint/oaslint/linterrors"
)

func TestPrintUsage(t *testing.T) {
	// Smoke test: usage rendering must not panic.
	printUsage()
}

func TestGenerateExitCode(t *testing.T) {
	loadErr := &linterrors.LoadError{File: "openapi.yaml", Message: "no such file"}
	assert.Equal(t, 2, generateExitCode(loadErr))
	assert.Equal(t, 2, generateExitCode(linterrors.ErrLoad))
	assert.Equal(t, 1, generateExitCode(errors.New("generator exited with status 1")))
}
