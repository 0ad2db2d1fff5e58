package intake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minAge = 1
	maxAge = 150
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@\S+\.\S+$`)

// Kind identifies which validation rule failed.
type Kind int

const (
	MissingFields Kind = iota
	InvalidEmail
	InvalidAge
)

func (k Kind) String() string {
	switch k {
	case MissingFields:
		return "missing_fields"
	case InvalidEmail:
		return "invalid_email"
	case InvalidAge:
		return "invalid_age"
	}
	return "unknown"
}

// ValidationError is a local, recoverable failure. It never triggers a
// network call.
type ValidationError struct {
	Kind Kind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Kind)
}

// Validate checks the state in order and reports only the first failure:
// completeness, then email shape, then age range. It never mutates state.
func Validate(s State) error {
	fields := []string{s.Name, s.Age, s.City, s.Phone, s.Email}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return &ValidationError{Kind: MissingFields}
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		return &ValidationError{Kind: InvalidEmail}
	}

	age, ok := ParseAge(s.Age)
	if !ok || age < minAge || age > maxAge {
		return &ValidationError{Kind: InvalidAge}
	}

	return nil
}

// ParseAge parses the leading base-10 integer of s, so "12abc" parses as 12
// and "abc" fails. Leading and trailing whitespace is ignored.
func ParseAge(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
