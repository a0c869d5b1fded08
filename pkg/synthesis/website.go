package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const websiteGoalMin = 10

func synthesizeWebsite(alt map[string]any) map[string]any {
	out := map[string]any{}

	if s := prose(alt,
		"diagnostic.conversion.primaryGoal",
		"conversionGoal.primary",
		"primaryConversionGoal",
	); len(s) >= websiteGoalMin {
		jsonval.SetNested(out, "conversionGoal.primary", s)
	}

	if items := list(alt,
		"diagnostic.messaging.findings",
		"messagingAudit.findings",
		"messagingFindings",
	); len(items) >= 2 {
		jsonval.SetNested(out, "messagingAudit.findings", items)
	}

	if items := list(alt,
		"diagnostic.architecture.keyPages",
		"pageArchitecture.keyPages",
		"keyPages",
	); len(items) >= 3 {
		jsonval.SetNested(out, "pageArchitecture.keyPages", items)
	}

	if items := list(alt,
		"diagnostic.ux.issues",
		"uxIssues.items",
		"uxIssues",
	); len(items) > 0 {
		jsonval.SetNested(out, "uxIssues.items", items)
	}

	if s := prose(alt,
		"diagnostic.seo.summary",
		"seoBaseline.summary",
	); s != "" {
		jsonval.SetNested(out, "seoBaseline.summary", s)
	}

	if items := list(alt,
		"diagnostic.analytics.stack",
		"analytics.stack",
		"analyticsStack",
	); len(items) > 0 {
		jsonval.SetNested(out, "analytics.stack", items)
	}

	return out
}
