// Package urlutil normalizes user-supplied links. Every place a URL is
// accepted (the scannable-code link, social media links) goes through
// Normalize so the behavior cannot diverge between call sites.
package urlutil

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// ValidationError reports a link that could not be normalized into a
// well-formed URL. It is surfaced to the user, never stored.
type ValidationError struct {
	Raw    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid url %q: %s", e.Raw, e.Reason)
}

// Normalize prefixes https:// when the scheme is missing and validates
// the result. An empty input stays empty (the link is optional).
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	candidate := raw
	if !schemePattern.MatchString(candidate) {
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", &ValidationError{Raw: raw, Reason: err.Error()}
	}
	if parsed.Host == "" {
		return "", &ValidationError{Raw: raw, Reason: "missing host"}
	}
	return candidate, nil
}
