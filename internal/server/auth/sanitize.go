package auth

import "strings"

// Keyword blacklists for the heuristic input filter. This is a substring
// scan layered on top of parameterized queries, not a parser-level defense:
// it false-positives on legitimate text ("Select your plan") and misses
// obfuscated payloads. Do not extend without product sign-off.
var (
	sqlKeywords = []string{"SELECT", "UPDATE", "DELETE", "DROP", "INSERT", "ALTER", "FROM"}
	xssMarkers  = []string{"<script>", "javascript:", "onerror", "onload", "alert("}
)

// IsSafeInput reports whether input is free of SQL-control keywords and
// script-injection markers, matched case-insensitively.
func IsSafeInput(input string) bool {
	return !containsSQLKeyword(input) && !containsXSSMarker(input)
}

func containsSQLKeyword(input string) bool {
	upper := strings.ToUpper(input)
	for _, keyword := range sqlKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}

func containsXSSMarker(input string) bool {
	lower := strings.ToLower(input)
	for _, marker := range xssMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
