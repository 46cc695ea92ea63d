package model

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Bounded-field limits for personal info. Violations are rejected at the
// point of entry and never reach the stored aggregate.
const (
	MaxStandardLength = 100
	MaxSummaryLength  = 500
)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]*$`)

// FieldError reports a rejected field value.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidatePersonalInfoPatch enforces the bounded-length and phone format
// rules on the fields a patch actually sets.
func ValidatePersonalInfoPatch(p PersonalInfoPatch) error {
	bounded := map[string]*string{
		"name":     p.Name,
		"email":    p.Email,
		"jobTitle": p.JobTitle,
		"address":  p.Address,
	}
	for field, v := range bounded {
		if v != nil && utf8.RuneCountInString(*v) > MaxStandardLength {
			return &FieldError{Field: field, Reason: fmt.Sprintf("longer than %d characters", MaxStandardLength)}
		}
	}
	if p.Summary != nil && utf8.RuneCountInString(*p.Summary) > MaxSummaryLength {
		return &FieldError{Field: "summary", Reason: fmt.Sprintf("longer than %d characters", MaxSummaryLength)}
	}
	if p.Phone != nil && !phonePattern.MatchString(*p.Phone) {
		return &FieldError{Field: "phone", Reason: "may only contain digits, spaces, parentheses, + and -"}
	}
	return nil
}
