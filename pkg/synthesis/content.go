package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const contentStrategyMin = 20

func synthesizeContent(alt map[string]any) map[string]any {
	out := map[string]any{}

	if items := list(alt,
		"diagnostic.pillars",
		"pillars.themes",
		"contentPillars",
	); len(items) >= 2 {
		jsonval.SetNested(out, "pillars.themes", items)
	}

	if s := prose(alt,
		"diagnostic.editorial.summary",
		"editorialStrategy.summary",
		"editorialStrategy",
	); len(s) >= contentStrategyMin {
		jsonval.SetNested(out, "editorialStrategy.summary", s)
	}

	if s := prose(alt,
		"diagnostic.cadence.frequency",
		"cadence.frequency",
		"publishingCadence",
	); s != "" {
		jsonval.SetNested(out, "cadence.frequency", s)
	}

	if items := list(alt,
		"diagnostic.distribution.channels",
		"distribution.channels",
		"distributionChannels",
	); len(items) > 0 {
		jsonval.SetNested(out, "distribution.channels", items)
	}

	if obj := mapping(alt,
		"diagnostic.repurposing",
		"repurposing.map",
	); obj != nil {
		jsonval.SetNested(out, "repurposing.map", obj)
	}

	return out
}
