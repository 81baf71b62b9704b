package variants

import "sort"

// ValidationResult is the outcome of a duplicate-code check. Duplicates
// lists each colliding code once, sorted, so re-running the check after an
// inline edit always yields a stable message.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Duplicates []string `json:"duplicates,omitempty"`
}

// ValidateDuplicateCodes reports whether any code appears more than once.
// Codes are compared as exact, case-sensitive strings — the generator has
// already normalized case. Cheap enough to re-run on every edit.
func ValidateDuplicateCodes(codes []string) ValidationResult {
	seen := make(map[string]int, len(codes))
	for _, code := range codes {
		seen[code]++
	}

	var dups []string
	for code, n := range seen {
		if n > 1 {
			dups = append(dups, code)
		}
	}
	sort.Strings(dups)

	return ValidationResult{Valid: len(dups) == 0, Duplicates: dups}
}
