package config

import "time"

// Timer defaults.
const (
	DefaultDurationMinutes = 20
	PollTimeout            = 10 * time.Millisecond
)

// MaxDurationMinutes keeps the converted duration inside time.Duration.
const MaxDurationMinutes = int64(1<<63-1) / int64(time.Minute)

// Notification settings.
const (
	ExpiryMessage = "Interval expired."
	// NotificationTimeout of zero keeps the notification until dismissed.
	NotificationTimeout = time.Duration(0)
)

// Application settings.
const (
	AppName     = "paradajz"
	LogFileName = "paradajz.log"
	ThemeEnvVar = "PARADAJZ_THEME"
)
