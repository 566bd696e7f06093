package checker

import (
	"regexp"
	"strings"

	"github.com/oaslint/oaslint/loader"
)

// operationRequiredFields are the fields every operation must carry with
// non-empty values, in report order.
var operationRequiredFields = []string{"tags", "summary", "description", "responses"}

// checkIncompleteOperations reports one violation per missing or empty
// required field on every operation in the graph.
func checkIncompleteOperations(ctx *ruleContext, rule *RuleSpec) {
	forEachOperation(ctx.graph, func(pathKey, method string, op *loader.Node) {
		for _, field := range operationRequiredFields {
			v := op.Field(field)
			switch {
			case v == nil:
				ctx.reportNode(rule, op,
					"operation %s %s is missing %s", strings.ToUpper(method), pathKey, field)
			case !hasContent(v):
				ctx.reportNode(rule, v,
					"operation %s %s has an empty %s", strings.ToUpper(method), pathKey, field)
			}
		}
	})
}

// hasContent reports whether a field value is meaningfully populated: a
// non-blank scalar, or a mapping/sequence with at least one entry.
func hasContent(n *loader.Node) bool {
	switch {
	case n.IsScalar():
		return strings.TrimSpace(n.Value) != "" && n.Tag != "!!null"
	case n.IsMapping(), n.IsSequence():
		return n.Len() > 0
	default:
		return false
	}
}

// errorStatusPattern matches 4xx/5xx status code keys, including the
// OpenAPI wildcard forms 4XX and 5XX.
var errorStatusPattern = regexp.MustCompile(`^[45]([0-9]{2}|XX)$`)

// checkErrorResponseReuse enforces that every 4xx/5xx response is a pure
// $ref resolving into the shared error responses (components/responses/ or
// the common error schemas) rather than an ad-hoc inline definition.
func checkErrorResponseReuse(ctx *ruleContext, rule *RuleSpec) {
	forEachOperation(ctx.graph, func(pathKey, method string, op *loader.Node) {
		responses := op.Field("responses")
		if !responses.IsMapping() {
			return
		}
		for _, status := range responses.SortedKeys() {
			if !errorStatusPattern.MatchString(status) {
				continue
			}
			resp := responses.Field(status)
			if !resp.IsPureRef() {
				ctx.reportNode(rule, resp,
					"%s response for %s %s is defined inline; reference a shared error response instead",
					status, strings.ToUpper(method), pathKey)
				continue
			}
			target := resp.Resolve()
			if target == nil {
				continue
			}
			if !isSharedErrorLocation(target.File) {
				ctx.reportNode(rule, resp,
					"%s response for %s %s must reference components/responses/ or components/schemas/common/, found %s",
					status, strings.ToUpper(method), pathKey, target.File)
			}
		}
	})
}
