package commands

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oaslint/oaslint/checker"
)

// debounceDelay batches the editor write bursts that follow a save into a
// single re-lint.
const debounceDelay = 250 * time.Millisecond

// runWatch lints once, then re-lints whenever a file under the document set
// directory changes. Violations do not terminate the process in watch mode;
// it runs until interrupted.
func runWatch(entryPath string, flags *LintFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	absEntry, err := filepath.Abs(entryPath)
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(absEntry)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchRecursive(watcher, baseDir); err != nil {
		return err
	}

	lintPass := func() {
		Writef(os.Stderr, "--- %s linting %s\n", time.Now().Format(time.TimeOnly), entryPath)
		result, err := runLint(entryPath, flags)
		reportWatchPass(os.Stderr, result, err, flags.Quiet)
	}
	lintPass()

	// The timer starts drained; events arm it and the pass runs once the
	// burst settles.
	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchRecursive(watcher, event.Name)
				}
			}
			debounce.Reset(debounceDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			Writef(os.Stderr, "watch error: %v\n", err)
		case <-debounce.C:
			lintPass()
		}
	}
}

// reportWatchPass writes the one-line outcome of a watch pass. Quiet mode
// suppresses the full report, but every pass still announces its result so
// a dirty set is distinguishable from a pass that never finished.
func reportWatchPass(w io.Writer, result *checker.CheckResult, err error, quiet bool) {
	switch {
	case err != nil:
		Writef(w, "Error: %v\n", err)
	case !quiet:
	case result.Clean:
		Writef(w, "clean\n")
	default:
		Writef(w, "%d violation(s): %d error(s), %d warning(s)\n",
			result.ViolationCount, result.ErrorCount, result.WarningCount)
	}
}

// watchRecursive adds dir and every directory below it to the watcher.
func watchRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
