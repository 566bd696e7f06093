package checker

import "github.com/oaslint/oaslint/loader"

// checkMislocatedSchemas finds inline schema definitions in files that may
// only reference schemas: path item files and the request-body and response
// component files. An inline schema is the mapping value of a "schema" key
// that carries no $ref.
func checkMislocatedSchemas(ctx *ruleContext, rule *RuleSpec) {
	for _, f := range ctx.graph.Files {
		if !isSchemaRestrictedFile(f) {
			continue
		}
		findInlineSchemas(ctx, rule, ctx.graph.FileRoot(f))
	}
}

// findInlineSchemas walks a file's node tree without following references,
// so each file is reported exactly once even when files reference each
// other. A violating schema node is reported once and not descended into,
// so nested inline sub-schemas do not produce duplicate findings.
func findInlineSchemas(ctx *ruleContext, rule *RuleSpec, n *loader.Node) {
	switch {
	case n.IsMapping():
		for _, key := range n.Keys {
			child := n.Field(key)
			if key == "schema" && child.IsMapping() && !child.IsRef() {
				ctx.reportNode(rule, child,
					"inline schema definition; move it under components/schemas/ and reference it with $ref")
				continue
			}
			findInlineSchemas(ctx, rule, child)
		}
	case n.IsSequence():
		for _, item := range n.Items {
			findInlineSchemas(ctx, rule, item)
		}
	}
}
