// Package synthesis derives canonical field values from alternate raw
// sources: the legacy "diagnostic" result shape produced by the v1 analysis
// pipeline and the flat shapes produced by LLM runs. One synthesizer exists
// per entity type; it reads whatever conventional legacy locations it knows
// about, applies its own acceptance thresholds, and emits only the fields it
// could derive, addressed in the canonical path namespace. Synthesizers never
// fail: an unexpected or missing shape simply yields nothing for that field.
//
// Thresholds here intentionally mirror, but are independent of, the field
// contract's MinLength/MinItems: a synthesized value may still fall short of
// the contract downstream and correctly be discarded as unusable.
package synthesis

// Synthesizer maps an alternate raw source into a partial canonical object.
// Implementations are pure and treat the source as read-only.
type Synthesizer func(alt map[string]any) map[string]any

var bank = map[string]Synthesizer{
	"brand":       synthesizeBrand,
	"website":     synthesizeWebsite,
	"content":     synthesizeContent,
	"seo":         synthesizeSEO,
	"demand":      synthesizeDemand,
	"lifecycle":   synthesizeLifecycle,
	"competitive": synthesizeCompetitive,
	"analytics":   synthesizeAnalytics,
	"social":      synthesizeSocial,
}

// ForType returns the synthesizer registered for an entity type. Unknown or
// synthesis-less types get a no-op synthesizer so callers never branch on a
// missing strategy.
func ForType(entityType string) Synthesizer {
	if synth, ok := bank[entityType]; ok {
		return synth
	}
	return noop
}

func noop(map[string]any) map[string]any {
	return map[string]any{}
}
