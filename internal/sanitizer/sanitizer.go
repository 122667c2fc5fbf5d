// Package sanitizer redacts credentials and customer data from text kept in the journal.
package sanitizer

import "regexp"

type Rule interface {
	Sanitize(text string) string
}

// PatternRule replaces every match of its patterns with Replacement.
type PatternRule struct {
	Patterns    []*regexp.Regexp
	Replacement string
}

func (r PatternRule) Sanitize(text string) string {
	for _, p := range r.Patterns {
		text = p.ReplaceAllString(text, r.Replacement)
	}
	return text
}

var (
	Password = PatternRule{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[:=]\s*["']?[^"'\s]{3,}["']?`),
		},
		Replacement: `${1}: [FILTERED]`,
	}
	Token = PatternRule{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(token|api[_-]?key|secret[_-]?key|access[_-]?key)\s*[:=]\s*["']?[a-zA-Z0-9_-]{20,}["']?`),
			regexp.MustCompile(`(?i)(bearer\s+)[a-zA-Z0-9._-]{20,}`),
		},
		Replacement: `${1}[FILTERED]`,
	}
	Cookie = PatternRule{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(cookie|session[_-]?id)\s*[:=]\s*["']?[^"'\s]{10,}["']?`),
		},
		Replacement: `${1}: [FILTERED]`,
	}
	Card = PatternRule{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
		},
		Replacement: `[FILTERED_CARD]`,
	}
	Email = PatternRule{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`),
		},
		Replacement: `[FILTERED_EMAIL]`,
	}
)

type DataSanitizer struct {
	rules []Rule
}

// New returns a sanitizer with the default rules, applied in order.
func New(extra ...Rule) *DataSanitizer {
	rules := []Rule{Password, Token, Cookie, Card, Email}
	return &DataSanitizer{rules: append(rules, extra...)}
}

func (s *DataSanitizer) Sanitize(text string) string {
	if text == "" {
		return text
	}
	for _, rule := range s.rules {
		text = rule.Sanitize(text)
	}
	return text
}
