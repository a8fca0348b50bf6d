// Package roleicon generates the icon set and material descriptors
// for a TTT role addon from a single source image.
package roleicon

import (
	"strings"
	"unicode"

	"github.com/akeil/roleicon/internal/logging"
)

// SetLogLevel sets the log level to one of
// debug | info | warning | error.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}

// ValidateNamespace checks that the short name is usable as a namespace
// for generated files. It must contain at least one letter and no
// uppercase characters.
func ValidateNamespace(ns string) error {
	cased := false
	for _, r := range ns {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return NewValidationError("name %q must be all-lowercase", ns)
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	if !cased {
		return NewValidationError("name %q must contain at least one lowercase letter", ns)
	}
	return nil
}
