package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const seoAuditMin = 20

func synthesizeSEO(alt map[string]any) map[string]any {
	out := map[string]any{}

	if items := list(alt,
		"diagnostic.keywords.clusters",
		"keywordStrategy.primaryClusters",
		"keywordClusters",
	); len(items) >= 3 {
		jsonval.SetNested(out, "keywordStrategy.primaryClusters", items)
	}

	if s := prose(alt,
		"diagnostic.technical.summary",
		"technicalAudit.summary",
		"technicalSummary",
	); len(s) >= seoAuditMin {
		jsonval.SetNested(out, "technicalAudit.summary", s)
	}

	if items := list(alt,
		"diagnostic.technical.criticalIssues",
		"technicalAudit.criticalIssues",
		"criticalIssues",
	); len(items) > 0 {
		jsonval.SetNested(out, "technicalAudit.criticalIssues", items)
	}

	if items := list(alt,
		"diagnostic.gaps.opportunities",
		"contentGaps.opportunities",
		"contentGaps",
	); len(items) >= 2 {
		jsonval.SetNested(out, "contentGaps.opportunities", items)
	}

	if s := prose(alt,
		"diagnostic.backlinks.assessment",
		"backlinkProfile.assessment",
	); s != "" {
		jsonval.SetNested(out, "backlinkProfile.assessment", s)
	}

	return out
}
