package pricing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCode is the only place coupon codes are canonicalized.
func NormalizeCode(code string) string {
	// cases.Caser is stateful, so one per call.
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}
