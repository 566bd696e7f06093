package checker

// checkEntryPurity enforces that the entry document is a pure table of
// contents: every value under paths and under each components section must
// be a single $ref with no sibling keys. A components section that is
// itself a pure $ref (delegating the whole section to another file) is
// allowed.
func checkEntryPurity(ctx *ruleContext, rule *RuleSpec) {
	root := ctx.graph.Root

	paths := root.Field("paths")
	if paths.IsMapping() && !paths.IsRef() {
		for _, pathKey := range paths.SortedKeys() {
			item := paths.Field(pathKey)
			if !item.IsPureRef() {
				ctx.reportNode(rule, item,
					"path item %q must be a single $ref into paths/, found an inline definition", pathKey)
			}
		}
	}

	components := root.Field("components")
	if !components.IsMapping() {
		return
	}
	for _, section := range components.SortedKeys() {
		sec := components.Field(section)
		if sec.IsPureRef() {
			continue
		}
		if !sec.IsMapping() {
			ctx.reportNode(rule, sec,
				"components.%s must map component names to $ref entries", section)
			continue
		}
		for _, name := range sec.SortedKeys() {
			entry := sec.Field(name)
			if !entry.IsPureRef() {
				ctx.reportNode(rule, entry,
					"component %q in components.%s must be a single $ref into components/, found an inline definition", name, section)
			}
		}
	}
}
