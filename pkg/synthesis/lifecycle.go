package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const lifecycleWinbackMin = 20

func synthesizeLifecycle(alt map[string]any) map[string]any {
	out := map[string]any{}

	if obj := mapping(alt,
		"diagnostic.stages",
		"stages.map",
		"stageMap",
	); obj != nil {
		jsonval.SetNested(out, "stages.map", obj)
	}

	if items := list(alt,
		"diagnostic.triggers.events",
		"triggers.events",
		"triggerEvents",
	); len(items) >= 2 {
		jsonval.SetNested(out, "triggers.events", items)
	}

	if items := list(alt,
		"diagnostic.nurture.sequences",
		"nurture.sequences",
		"nurtureSequences",
	); len(items) > 0 {
		jsonval.SetNested(out, "nurture.sequences", items)
	}

	if s := prose(alt,
		"diagnostic.winback.strategy",
		"winback.strategy",
		"winbackStrategy",
	); len(s) >= lifecycleWinbackMin {
		jsonval.SetNested(out, "winback.strategy", s)
	}

	if obj := mapping(alt,
		"diagnostic.scoring.model",
		"scoring.model",
		"scoringModel",
	); obj != nil {
		jsonval.SetNested(out, "scoring.model", obj)
	}

	return out
}
