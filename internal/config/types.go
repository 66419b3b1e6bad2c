package config

import "time"

// Config holds the user-tunable settings of the site program. Every field has
// a default so an empty or missing file is valid.
type Config struct {
	// Language is the initial locale. Empty means "derive from the environment".
	Language string `yaml:"language" validate:"omitempty,locale"`

	TypingInterval time.Duration `yaml:"typing_interval" validate:"gte=1ms,lte=1s"`
	CursorBlink    time.Duration `yaml:"cursor_blink" validate:"gte=50ms,lte=5s"`
	SubmitDelay    time.Duration `yaml:"submit_delay" validate:"gte=0,lte=30s"`
	BannerTimeout  time.Duration `yaml:"banner_timeout" validate:"gte=100ms,lte=1m"`

	// ScrollThreshold is the number of scrolled lines after which the navbar
	// switches to its compact style.
	ScrollThreshold int `yaml:"scroll_threshold" validate:"gte=0,lte=100"`
	// MenuBreakpoint is the terminal width below which navbar links collapse
	// into a toggleable menu.
	MenuBreakpoint int `yaml:"menu_breakpoint" validate:"gte=40,lte=400"`

	// FailureRate is the probability that a simulated contact submission fails.
	FailureRate float64 `yaml:"failure_rate" validate:"gte=0,lte=1"`

	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the settings used when no configuration file exists.
func Default() Config {
	return Config{
		TypingInterval:  20 * time.Millisecond,
		CursorBlink:     800 * time.Millisecond,
		SubmitDelay:     1500 * time.Millisecond,
		BannerTimeout:   5 * time.Second,
		ScrollThreshold: 2,
		MenuBreakpoint:  90,
		LogLevel:        "info",
	}
}
