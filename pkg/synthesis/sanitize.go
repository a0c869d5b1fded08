package synthesis

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	prosePolicyOnce sync.Once
	prosePolicy     *bluemonday.Policy
)

// CleanProse strips markup from text lifted out of LLM or legacy payloads so
// acceptance thresholds measure prose, not tags. Entities are unescaped after
// sanitizing and whitespace runs are collapsed.
func CleanProse(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := proseSanitizer().Sanitize(trimmed)
	cleaned = html.UnescapeString(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

func proseSanitizer() *bluemonday.Policy {
	prosePolicyOnce.Do(func() {
		prosePolicy = bluemonday.StrictPolicy()
	})
	return prosePolicy
}
