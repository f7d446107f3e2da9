package config

// LoggingConfig controls where tour logs go and which categories speak.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // console, json
	File       string          `yaml:"file" json:"file,omitempty"`             // empty = stderr
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // off: boot logs only
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // sequence, text, mapping, ...
}

// IsCategoryEnabled reports whether a step category may log. Outside debug
// mode every category is silent; in debug mode a category is on unless the
// categories map switches it off.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, listed := c.Categories[category]
	return !listed || enabled
}
