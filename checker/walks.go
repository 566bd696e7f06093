package checker

import (
	"strings"

	"github.com/oaslint/oaslint/loader"
)

// forEachOperation visits every operation in the graph in deterministic
// order: path templates alphabetically, methods in specification order.
// The paths section, path items, and operations reached through $ref are
// resolved first, so fn always receives the node where the operation is
// physically defined — a delegated paths section (the entry's `paths` being
// one $ref to an index file) is walked like an inline one.
func forEachOperation(g *loader.Graph, fn func(pathKey, method string, op *loader.Node)) {
	paths := g.Root.Field("paths").Resolve()
	for _, pathKey := range paths.SortedKeys() {
		item := paths.Field(pathKey).Resolve()
		if !item.IsMapping() {
			continue
		}
		for _, method := range loader.HTTPMethods {
			op := item.Field(method)
			if op == nil {
				continue
			}
			if resolved := op.Resolve(); resolved.IsMapping() {
				fn(pathKey, method, resolved)
			}
		}
	}
}

// isSchemaRestrictedFile reports whether f may not contain inline schema
// definitions: path item files and request-body/response component files.
func isSchemaRestrictedFile(f string) bool {
	return strings.HasPrefix(f, "paths/") ||
		strings.HasPrefix(f, "components/request-bodies/") ||
		strings.HasPrefix(f, "components/responses/")
}

// componentDir returns the components subfolder a file belongs to
// ("schemas", "request-bodies", ...), or "" when f is not a component file.
// Nested files report their top subfolder: components/schemas/common/x.yaml
// is in "schemas".
func componentDir(f string) string {
	rest, ok := strings.CutPrefix(f, "components/")
	if !ok {
		return ""
	}
	dir, _, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	return dir
}

// isSharedErrorLocation reports whether f is an acceptable home for a
// reusable error response: the shared responses folder or the common
// error-response schemas.
func isSharedErrorLocation(f string) bool {
	return strings.HasPrefix(f, "components/responses/") ||
		strings.HasPrefix(f, "components/schemas/common/")
}
