// Package fileutil provides the on-disk file inventory used for orphan
// detection.
package fileutil

import (
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// inventoryPattern matches every specification file the modular layout may
// contain: path item files under paths/ and component files under
// components/, in YAML or JSON form.
const inventoryPattern = "{paths,components}/**/*.{yaml,yml,json}"

// Inventory returns the sorted slash-separated paths of all specification
// files found under fsys. Pass os.DirFS(baseDir) to inventory a document
// set rooted at baseDir.
func Inventory(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, inventoryPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
