// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Provider errors routinely
// embed the full request URL, including the API key query parameter, so every error
// that crosses a logging boundary should pass through Error first.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

// rule pairs a pattern with its replacement template. Templates may refer to
// capture groups so that parameter names survive and only values are hidden.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; URL parameters go first so the generic key
// pattern never sees a half-redacted value.
var rules = []rule{
	{
		// ?key=..., &api_key=..., &access_token=...
		pattern:     regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey|access_token)=)[^&\s"']+`),
		replacement: "${1}" + RedactedKeyPlaceholder,
	},
	{
		// Google API keys anywhere in the text.
		pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(x-goog-api-key|authorization)(\s*[:=]\s*)(?:bearer\s+)?[^\s,"']+`),
		replacement: "${1}${2}" + RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: RedactedStackPlaceholder,
	},
	{
		// Absolute file paths, but not the path part of a URL.
		pattern:     regexp.MustCompile(`(^|[\s"'(=])(/[\w.-]+){2,}`),
		replacement: "${1}" + RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
