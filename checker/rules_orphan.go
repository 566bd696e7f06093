package checker

// checkOrphanFiles reports every file in the on-disk inventory of paths/
// and components/ that the reference graph never reached from the entry
// document.
func checkOrphanFiles(ctx *ruleContext, rule *RuleSpec) {
	for _, f := range ctx.inventory {
		if ctx.graph.Contains(f) {
			continue
		}
		ctx.reportFile(rule, f,
			"file is not reachable from %s via any $ref chain; delete it or reference it",
			ctx.graph.EntryFile)
	}
}
