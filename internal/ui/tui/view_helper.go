package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/svgsym/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// renderFragment lays the fragment out one tag per line for the viewport.
func renderFragment(res domain.TreatmentResult) string {
	if res.Output == "" {
		return "(empty)"
	}
	return strings.ReplaceAll(res.Output, "><", ">\n<")
}
