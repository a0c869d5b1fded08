package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const competitiveSummaryMin = 20

func synthesizeCompetitive(alt map[string]any) map[string]any {
	out := map[string]any{}

	if s := prose(alt,
		"diagnostic.landscape.summary",
		"landscape.summary",
		"landscapeSummary",
	); len(s) >= competitiveSummaryMin {
		jsonval.SetNested(out, "landscape.summary", s)
	}

	if items := list(alt,
		"diagnostic.competitors",
		"competitors.profiles",
		"competitorProfiles",
	); len(items) >= 2 {
		jsonval.SetNested(out, "competitors.profiles", items)
	}

	if items := list(alt,
		"diagnostic.gaps.positioning",
		"positioningGaps.opportunities",
		"positioningGaps",
	); len(items) > 0 {
		jsonval.SetNested(out, "positioningGaps.opportunities", items)
	}

	if obj := mapping(alt,
		"diagnostic.pricing.comparison",
		"pricingComparison.table",
	); obj != nil {
		jsonval.SetNested(out, "pricingComparison.table", obj)
	}

	if items := list(alt,
		"diagnostic.winLoss.themes",
		"winLoss.themes",
		"winLossThemes",
	); len(items) > 0 {
		jsonval.SetNested(out, "winLoss.themes", items)
	}

	return out
}
