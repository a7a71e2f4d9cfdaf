package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	Theme        string  `json:"theme" mapstructure:"theme"`         // "dark" or "light"
	LogLevel     string  `json:"log_level" mapstructure:"log_level"` // zerolog level name
	WindowWidth  float32 `json:"window_width" mapstructure:"window_width"`
	WindowHeight float32 `json:"window_height" mapstructure:"window_height"`
}

const (
	defaultWindowWidth  = 360
	defaultWindowHeight = 300
)

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:        ThemeDark.String(),
		LogLevel:     "info",
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
	}
}

// ThemeVariant returns the configured starting theme.
func (c AppConfig) ThemeVariant() ThemeVariant {
	return ParseThemeVariant(c.Theme)
}

// Normalize replaces unusable values with defaults.
func (c *AppConfig) Normalize() {
	defaults := DefaultAppConfig()
	c.Theme = c.ThemeVariant().String()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = defaults.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = defaults.WindowHeight
	}
}
