package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const analyticsMetricMin = 5

func synthesizeAnalytics(alt map[string]any) map[string]any {
	out := map[string]any{}

	if items := list(alt,
		"diagnostic.kpis.primary",
		"kpiFramework.primary",
		"primaryKpis",
	); len(items) >= 2 {
		jsonval.SetNested(out, "kpiFramework.primary", items)
	}

	if s := prose(alt,
		"diagnostic.northStar",
		"northStar.metric",
		"northStarMetric",
	); len(s) >= analyticsMetricMin {
		jsonval.SetNested(out, "northStar.metric", s)
	}

	if s := prose(alt,
		"diagnostic.attribution.model",
		"attribution.model",
		"attributionModel",
	); s != "" {
		jsonval.SetNested(out, "attribution.model", s)
	}

	if items := list(alt,
		"diagnostic.dataGaps",
		"dataGaps.issues",
		"dataGaps",
	); len(items) > 0 {
		jsonval.SetNested(out, "dataGaps.issues", items)
	}

	if items := list(alt,
		"diagnostic.dashboards",
		"dashboards.specs",
		"dashboardSpecs",
	); len(items) > 0 {
		jsonval.SetNested(out, "dashboards.specs", items)
	}

	return out
}
