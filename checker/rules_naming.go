package checker

import (
	"path"
	"strings"

	"github.com/oaslint/oaslint/internal/naming"
)

// componentKeySuffixes maps each components subfolder to the suffix its
// PascalCase component keys must carry. Subfolders not listed here have no
// key convention.
var componentKeySuffixes = map[string]string{
	"schemas":        "",
	"request-bodies": "Request",
	"responses":      "Response",
	"parameters":     "Param",
}

// checkNaming enforces the naming conventions of the document set: file
// base names under components/ must be kebab-case, and top-level component
// keys must be PascalCase with the suffix their subfolder prescribes.
func checkNaming(ctx *ruleContext, rule *RuleSpec) {
	for _, f := range ctx.graph.Files {
		dir := componentDir(f)
		if dir == "" {
			continue
		}

		base := path.Base(f)
		stem := strings.TrimSuffix(base, path.Ext(base))
		if !naming.IsKebabCase(stem) {
			ctx.reportFile(rule, f,
				"file name %q is not kebab-case; rename to %q",
				base, naming.ToKebabCase(stem)+path.Ext(base))
		}

		suffix, ok := componentKeySuffixes[dir]
		if !ok {
			continue
		}
		root := ctx.graph.FileRoot(f)
		if !root.IsMapping() {
			continue
		}
		for _, key := range root.SortedKeys() {
			if naming.IsPascalCase(key) && (suffix == "" || strings.HasSuffix(key, suffix)) {
				continue
			}
			want := naming.SuggestComponentName(key, suffix)
			if suffix == "" {
				ctx.reportNode(rule, root.Field(key),
					"component key %q in components/%s must be PascalCase; rename to %q", key, dir, want)
			} else {
				ctx.reportNode(rule, root.Field(key),
					"component key %q in components/%s must be PascalCase ending in %q; rename to %q", key, dir, suffix, want)
			}
		}
	}
}
