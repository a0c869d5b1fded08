package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

// Acceptance thresholds for brand prose. A positioning statement shorter
// than this is a fragment, not a statement.
const (
	brandStatementMin = 15
	brandHeadlineMin  = 10
	brandAudienceMin  = 10
)

func synthesizeBrand(alt map[string]any) map[string]any {
	out := map[string]any{}

	if s := prose(alt,
		"diagnostic.positioning.positioningTheme",
		"positioning.statement",
		"positioningStatement",
	); len(s) >= brandStatementMin {
		jsonval.SetNested(out, "positioning.statement", s)
	}

	if s := prose(alt,
		"diagnostic.positioning.categoryFrame",
		"positioning.category",
		"category",
	); s != "" {
		jsonval.SetNested(out, "positioning.category", s)
	}

	if s := prose(alt,
		"diagnostic.valueProposition.headline",
		"valueProp.headline",
		"valuePropHeadline",
	); len(s) >= brandHeadlineMin {
		jsonval.SetNested(out, "valueProp.headline", s)
	}

	if items := list(alt,
		"diagnostic.differentiators",
		"differentiators.bullets",
		"differentiators",
	); len(items) >= 2 {
		jsonval.SetNested(out, "differentiators.bullets", items)
	}

	if s := prose(alt,
		"diagnostic.audience.primary",
		"icp.primaryAudience",
		"primaryAudience",
	); len(s) >= brandAudienceMin {
		jsonval.SetNested(out, "icp.primaryAudience", s)
	}

	if items := list(alt,
		"diagnostic.audience.secondary",
		"icp.secondaryAudiences",
		"secondaryAudiences",
	); len(items) > 0 {
		jsonval.SetNested(out, "icp.secondaryAudiences", items)
	}

	if items := list(alt,
		"diagnostic.tone.attributes",
		"toneOfVoice.attributes",
		"toneAttributes",
	); len(items) > 0 {
		jsonval.SetNested(out, "toneOfVoice.attributes", items)
	}

	if items := list(alt,
		"diagnostic.proofPoints",
		"proofPoints.items",
		"proofPoints",
	); len(items) > 0 {
		jsonval.SetNested(out, "proofPoints.items", items)
	}

	return out
}
