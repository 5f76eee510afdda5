package remap

import (
	"regexp"

	"github.com/rs/zerolog"
)

// matcher turns source file paths into logical package names using the
// configured pattern. A matcher configured with a non-string value, or
// with a pattern that does not compile, stays disabled and never matches.
type matcher struct {
	re      *regexp.Regexp
	enabled bool
}

// newMatcher compiles the configured pattern value. Only strings are
// treated as patterns; any other value disables matching quietly. A
// string that fails to compile disables matching with a warning.
func newMatcher(value any, logger *zerolog.Logger) *matcher {
	m := &matcher{}

	pattern, ok := value.(string)
	if !ok {
		logger.Debug().Msg("Mapping pattern missing or not a string, module mapping disabled")
		return m
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("pattern", pattern).
			Msg("Invalid mapping pattern, module mapping disabled")
		return m
	}

	m.re = re
	m.enabled = true
	logger.Debug().Str("pattern", pattern).Msg("Mapping pattern compiled")
	return m
}

// match extracts the logical package name from a source file path. The
// name is the pattern's first capture group; a match without a capture
// group counts as no match.
func (m *matcher) match(filePath string) (string, bool) {
	if !m.enabled {
		return "", false
	}

	submatch := m.re.FindStringSubmatch(filePath)
	if len(submatch) < 2 {
		return "", false
	}
	return submatch[1], true
}
