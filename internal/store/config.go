package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Variant string `yaml:"variant"` // TRADE or DAY aggregation framing
	Source  struct {
		Kind string `yaml:"kind"` // URL or FILE
		URL  string `yaml:"url"`
		Path string `yaml:"path"`
	} `yaml:"source"`
	Table struct {
		Selector       string `yaml:"selector"`
		HeaderSelector string `yaml:"header_selector"`
		RowSelector    string `yaml:"row_selector"`
		CellSelector   string `yaml:"cell_selector"`
		BadgeSelector  string `yaml:"badge_selector"`
	} `yaml:"table"`
	Watch struct {
		PollMillis     int `yaml:"poll_millis"`
		DebounceMillis int `yaml:"debounce_millis"`
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"watch"`
	View struct {
		Mode   string `yaml:"mode"` // all, asset or day
		Symbol string `yaml:"symbol"`
		Day    string `yaml:"day"`
	} `yaml:"view"`
	Export struct {
		Enabled bool   `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"export"`
}

func (c *Config) Validate() error {
	if c.Variant != "TRADE" && c.Variant != "DAY" {
		return fmt.Errorf("invalid variant '%s': must be 'TRADE' or 'DAY'", c.Variant)
	}
	if c.Source.Kind != "URL" && c.Source.Kind != "FILE" {
		return fmt.Errorf("invalid source.kind '%s': must be 'URL' or 'FILE'", c.Source.Kind)
	}
	if c.Source.Kind == "URL" && c.Source.URL == "" {
		return errors.New("source.url cannot be empty when source.kind is 'URL'")
	}
	if c.Source.Kind == "FILE" && c.Source.Path == "" {
		return errors.New("source.path cannot be empty when source.kind is 'FILE'")
	}
	if c.View.Mode != "all" && c.View.Mode != "asset" && c.View.Mode != "day" {
		return fmt.Errorf("view.mode must be 'all', 'asset' or 'day', got '%s'", c.View.Mode)
	}
	if c.Watch.PollMillis <= 0 {
		return fmt.Errorf("watch.poll_millis must be positive, got %d", c.Watch.PollMillis)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Variant == "" {
		c.Variant = "DAY"
	}
	if c.Source.Kind == "" {
		if c.Source.URL != "" {
			c.Source.Kind = "URL"
		} else {
			c.Source.Kind = "FILE"
		}
	}
	if c.Table.Selector == "" {
		c.Table.Selector = "table"
	}
	if c.Table.HeaderSelector == "" {
		c.Table.HeaderSelector = "thead th"
	}
	if c.Table.RowSelector == "" {
		c.Table.RowSelector = "tbody tr"
	}
	if c.Table.CellSelector == "" {
		c.Table.CellSelector = "td"
	}
	if c.Table.BadgeSelector == "" {
		c.Table.BadgeSelector = ".symbol-badge"
	}
	if c.Watch.PollMillis == 0 {
		c.Watch.PollMillis = 1500
	}
	if c.Watch.DebounceMillis == 0 {
		c.Watch.DebounceMillis = 500
	}
	if c.Watch.TimeoutSeconds == 0 {
		c.Watch.TimeoutSeconds = 10
	}
	if c.View.Mode == "" {
		c.View.Mode = "all"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "reports"
	}
}
