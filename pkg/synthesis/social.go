package synthesis

import "github.com/hiveos/go-canonical/pkg/jsonval"

const socialVoiceMin = 20

func synthesizeSocial(alt map[string]any) map[string]any {
	out := map[string]any{}

	if items := list(alt,
		"diagnostic.channels.strategy",
		"channelStrategy.channels",
		"socialChannels",
	); len(items) >= 2 {
		jsonval.SetNested(out, "channelStrategy.channels", items)
	}

	if s := prose(alt,
		"diagnostic.voice.guidelines",
		"voice.guidelines",
		"voiceGuidelines",
	); len(s) >= socialVoiceMin {
		jsonval.SetNested(out, "voice.guidelines", s)
	}

	if num, ok := number(alt,
		"diagnostic.cadence.postsPerWeek",
		"cadence.postsPerWeek",
		"postsPerWeek",
	); ok && num > 0 {
		jsonval.SetNested(out, "cadence.postsPerWeek", num)
	}

	if s := prose(alt,
		"diagnostic.community.summary",
		"communityPlaybook.summary",
	); s != "" {
		jsonval.SetNested(out, "communityPlaybook.summary", s)
	}

	if obj := mapping(alt,
		"diagnostic.paidOrganic",
		"paidOrganicSplit.ratio",
	); obj != nil {
		jsonval.SetNested(out, "paidOrganicSplit.ratio", obj)
	}

	return out
}
