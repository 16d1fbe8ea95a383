package engine

import "fmt"

// ConfigurationError rejects a match before any state is created: empty
// decks, non-positive arena dimensions or malformed projectile
// definitions. It is the only match-fatal error class; everything that can
// go wrong mid-match is logged and skipped instead.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid match configuration: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
