package config

// Layout constants.
const (
	// TopPaddingPercent is the share of the screen height left blank above the timer.
	TopPaddingPercent = 48

	// HorizontalPadding is applied on both sides of the text and gauge.
	HorizontalPadding = 1

	// FallbackWidth and FallbackHeight are used when the size can't be queried.
	FallbackWidth  = 80
	FallbackHeight = 24
)

// AlarmClock prefixes the finish time.
const AlarmClock = "⏰"
