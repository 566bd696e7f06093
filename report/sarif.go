package report

import (
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/oaslint/oaslint/checker"
)

const (
	toolName = "oaslint"
	toolURI  = "https://github.com/oaslint/oaslint"
)

// WriteSARIF renders the result as a SARIF 2.1.0 report. Every rule in the
// provided rule set is declared on the run so code-scanning UIs can show
// rule metadata even for rules that produced no results.
func WriteSARIF(w io.Writer, result *checker.CheckResult, rules []checker.RuleSpec) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	for _, rule := range rules {
		run.AddRule(rule.ID).
			WithDescription(rule.Description).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: sarifLevel(rule.Severity),
			})
	}

	for _, v := range result.Violations {
		region := sarif.NewRegion()
		if v.Line > 0 {
			region.WithStartLine(v.Line)
			if v.Column > 0 {
				region.WithStartColumn(v.Column)
			}
		} else {
			region.WithStartLine(1)
		}

		location := sarif.NewLocation().
			WithPhysicalLocation(sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(v.File)).
				WithRegion(region))

		run.AddResult(sarif.NewRuleResult(v.RuleID).
			WithMessage(sarif.NewTextMessage(v.String())).
			WithLevel(sarifLevel(v.Severity)).
			WithLocations([]*sarif.Location{location}))
	}

	report.AddRun(run)
	return report.PrettyWrite(w)
}

func sarifLevel(s checker.Severity) string {
	switch s {
	case checker.SeverityError:
		return "error"
	case checker.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
