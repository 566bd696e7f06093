package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/checker"
)

func TestWatchRecursive(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "components", "schemas")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	require.NoError(t, watchRecursive(watcher, dir))

	watched := watcher.WatchList()
	assert.Contains(t, watched, dir)
	assert.Contains(t, watched, filepath.Join(dir, "components"))
	assert.Contains(t, watched, nested)
}

func TestReportWatchPass(t *testing.T) {
	dirty := &checker.CheckResult{
		Clean:          false,
		ViolationCount: 3,
		ErrorCount:     2,
		WarningCount:   1,
	}
	clean := &checker.CheckResult{Clean: true}

	tests := []struct {
		name   string
		result *checker.CheckResult
		err    error
		quiet  bool
		want   string
	}{
		{name: "load failure", err: errors.New("no such file"), quiet: true, want: "Error: no such file\n"},
		{name: "quiet clean", result: clean, quiet: true, want: "clean\n"},
		{name: "quiet dirty", result: dirty, quiet: true, want: "3 violation(s): 2 error(s), 1 warning(s)\n"},
		{name: "verbose pass already rendered", result: dirty, quiet: false, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportWatchPass(&buf, tt.result, tt.err, tt.quiet)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWatchRecursive_MissingDir(t *testing.T) {
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	assert.Error(t, watchRecursive(watcher, filepath.Join(t.TempDir(), "nope")))
}
