package config

// LoggingConfig configures logging. Logs go to stderr unless File is set;
// stdout carries only classification output.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level" validate:"oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Format     string          `yaml:"format" json:"format" validate:"oneof=json console" jsonschema:"enum=json,enum=console"`
	File       string          `yaml:"file,omitempty" json:"file,omitempty"`
	Categories map[string]bool `yaml:"categories,omitempty" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Categories not listed are enabled.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}
