// Package filter implements in-memory narrowing of already-fetched
// result sets. Handlers use it to honor query parameters such as a
// free-text term or a status filter without issuing a second database
// query. All functions are pure: they never mutate their input slice
// and always return a fresh one.
package filter

import "strings"

// MinTermLength is the shortest free-text term that narrows a result
// set. Shorter terms (after trimming) are treated as no filter at all,
// so a one-character query still shows the full list.
const MinTermLength = 2

// Normalize trims surrounding whitespace and lowercases a term. An
// empty string is returned for terms shorter than MinTermLength.
func Normalize(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if len([]rune(term)) < MinTermLength {
		return ""
	}
	return term
}

// Match reports whether any of the given fields contains the
// normalized term, case-insensitively. An empty term matches
// everything.
func Match(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// ByTerm returns the elements whose fields (as selected by the fields
// callback) contain the normalized term. The input slice is left
// untouched.
func ByTerm[T any](items []T, term string, fields func(T) []string) []T {
	term = Normalize(term)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(term, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

// ByStatus returns the elements whose status (as selected by the
// status callback) equals the given status, compared
// case-insensitively. An empty status matches everything.
func ByStatus[T any](items []T, status string, get func(T) string) []T {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return append([]T(nil), items...)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.ToUpper(get(it)) == status {
			out = append(out, it)
		}
	}
	return out
}
