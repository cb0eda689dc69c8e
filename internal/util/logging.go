// Package util provides small shared helpers: logging shortcuts, data
// directory resolution and numeric clamping.
package util

import "github.com/akyairhashvil/paradajz/internal/logger"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logger.Get().Error().Err(err).Msg(context)
	}
}
