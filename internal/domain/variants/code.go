package variants

import (
	"strings"
	"unicode"
)

const (
	codeSegmentLen = 3
	codeSeparator  = "-"
)

// BuildSKUCode derives the human-legible code for one combination:
// a prefix from the product name plus one segment per attribute value, in
// axis order, joined with "-". Example: "Camiseta" + {Cor: Preto,
// Tamanho: M} -> "CAM-PRE-M".
//
// Each segment is the first 3 runes, uppercased, with the prefix keeping
// letters only and value segments keeping letters and digits. The function
// is pure and deterministic; it does NOT guarantee uniqueness across
// combinations (short names collide) — that is the duplicate validator's
// job. Segments degrade to shorter or empty strings rather than failing.
func BuildSKUCode(productName string, combo Combination) string {
	prefix := codeSegment(productName, false)

	segments := make([]string, 0, len(combo))
	for _, p := range combo {
		segments = append(segments, codeSegment(p.Value, true))
	}
	if len(segments) == 0 {
		return prefix
	}
	return prefix + codeSeparator + strings.Join(segments, codeSeparator)
}

// codeSegment truncates to codeSegmentLen runes, uppercases and filters.
// Truncation happens before filtering, matching how the codes read in
// practice ("Preto" -> "PRE", "Tam 40" -> "TAM" -> "TA" without digits).
func codeSegment(s string, keepDigits bool) string {
	runes := []rune(s)
	if len(runes) > codeSegmentLen {
		runes = runes[:codeSegmentLen]
	}

	var b strings.Builder
	for _, r := range runes {
		r = unicode.ToUpper(r)
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case keepDigits && r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAttributes renders a SKU's attribute map for display, values joined
// by " / " in the given axis order ({"Cor": "Preto", "Tamanho": "M"} with
// axes ["Cor", "Tamanho"] -> "Preto / M"). Axes missing from the map are
// skipped.
func FormatAttributes(axisOrder []string, attrs map[string]string) string {
	values := make([]string, 0, len(attrs))
	for _, axis := range axisOrder {
		if v, ok := attrs[axis]; ok {
			values = append(values, v)
		}
	}
	return strings.Join(values, " / ")
}
