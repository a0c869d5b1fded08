package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const demandOfferMin = 20

func synthesizeDemand(alt map[string]any) map[string]any {
	out := map[string]any{}

	if items := list(alt,
		"diagnostic.channels.recommended",
		"channelMix.recommended",
		"recommendedChannels",
	); len(items) >= 2 {
		jsonval.SetNested(out, "channelMix.recommended", items)
	}

	if obj := mapping(alt,
		"diagnostic.budget.allocation",
		"budgetAllocation.model",
		"budgetModel",
	); obj != nil {
		jsonval.SetNested(out, "budgetAllocation.model", obj)
	}

	if items := list(alt,
		"diagnostic.targeting.segments",
		"targeting.segments",
		"targetSegments",
	); len(items) >= 2 {
		jsonval.SetNested(out, "targeting.segments", items)
	}

	if s := prose(alt,
		"diagnostic.offer.summary",
		"offerStrategy.summary",
		"offerStrategy",
	); len(s) >= demandOfferMin {
		jsonval.SetNested(out, "offerStrategy.summary", s)
	}

	if num, ok := number(alt,
		"diagnostic.benchmarks.cpl",
		"benchmarks.costPerLead",
		"costPerLead",
	); ok && num > 0 {
		jsonval.SetNested(out, "benchmarks.costPerLead", num)
	}

	return out
}
