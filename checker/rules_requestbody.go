package checker

import "strings"

// checkRequestBodyShape enforces the canonical shape of request-body
// components: only the keys required and content are allowed, content must
// declare at least one media type, and every media type's schema must be a
// $ref. A body with unexpected keys gets a single violation listing them
// and is not inspected further.
func checkRequestBodyShape(ctx *ruleContext, rule *RuleSpec) {
	for _, f := range ctx.graph.Files {
		if !strings.HasPrefix(f, "components/request-bodies/") {
			continue
		}
		root := ctx.graph.FileRoot(f)
		if !root.IsMapping() {
			continue
		}
		for _, name := range root.SortedKeys() {
			body := root.Field(name)
			if !body.IsMapping() || body.IsRef() {
				continue
			}

			var unexpected []string
			for _, key := range body.Keys {
				if key != "required" && key != "content" {
					unexpected = append(unexpected, key)
				}
			}
			if len(unexpected) > 0 {
				ctx.reportNode(rule, body,
					"request body %q contains unexpected key(s) %s; only required and content are allowed",
					name, strings.Join(unexpected, ", "))
				continue
			}

			content := body.Field("content")
			if !content.IsMapping() || content.Len() == 0 {
				ctx.reportNode(rule, body,
					"request body %q must declare content with at least one media type", name)
				continue
			}
			for _, mediaType := range content.SortedKeys() {
				media := content.Field(mediaType)
				schema := media.Field("schema")
				switch {
				case schema == nil:
					ctx.reportNode(rule, media,
						"media type %q in request body %q must declare a schema", mediaType, name)
				case !schema.IsRef():
					ctx.reportNode(rule, schema,
						"media type %q in request body %q must reference its schema with $ref, not define it inline", mediaType, name)
				}
			}
		}
	}
}
