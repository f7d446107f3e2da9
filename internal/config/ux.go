package config

// UXConfig holds terminal rendering configuration.
type UXConfig struct {
	// Plain disables lipgloss styling and glamour rendering
	Plain bool `json:"plain" yaml:"plain"`

	// WordWrap is the column width used for rendered notes
	WordWrap int `json:"word_wrap" yaml:"word_wrap"`
}
