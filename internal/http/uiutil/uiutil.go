// Package uiutil holds display formatting shared by templates and handlers.
package uiutil

import (
	"strconv"
	"strings"
	"time"
)

// FriendlyDateTimeLayout is the timestamp format used in tables and the audit panel.
const FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"

// FormatFriendlyDateTime returns a consistent, user-friendly local timestamp representation.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateTimeLayout)
}

// FormatMoney renders a price with two decimals and thousands separators, e.g. "1,250.00".
func FormatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	out := GroupThousands(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// GroupThousands inserts comma separators into a string of digits.
func GroupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3)

	prefix := len(digits) % 3
	if prefix == 0 {
		prefix = 3
	}
	b.WriteString(digits[:prefix])
	for i := prefix; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
