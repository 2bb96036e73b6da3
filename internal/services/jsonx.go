package services

import (
	"encoding/json"
	"regexp"
	"strings"

	"hirepilot/internal/apperr"
)

var (
	openingFence = regexp.MustCompile("(?i)^```(?:json)?[ \t]*\r?\n?")
	closingFence = regexp.MustCompile("```$")
)

// StripCodeFence removes one leading and one trailing markdown fence
// (```json or bare ```, case-insensitive) plus surrounding whitespace.
// Multiple or nested fenced blocks are not handled.
func StripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = openingFence.ReplaceAllString(clean, "")
	clean = closingFence.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// RecoverJSON strips fence wrapping from a model reply and unmarshals it
// into target. The failure message deliberately carries the full raw reply:
// operators debugging a misbehaving model need the original text.
func RecoverJSON(raw string, target any) error {
	clean := StripCodeFence(raw)

	if err := json.Unmarshal([]byte(clean), target); err != nil {
		return apperr.Wrap(apperr.CodeParseFailure,
			"Failed to parse extraction response as JSON: "+err.Error()+"; raw response: "+raw, err)
	}

	return nil
}
