package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// MaxMultiplier bounds the global quantity multiplier to four digits.
const MaxMultiplier = 9999

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type FontConfig struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Style  string  `yaml:"style"`
}

type BarConfig struct {
	Enabled bool   `yaml:"enabled"`
	Color   string `yaml:"color"`
}

// SideConfig carries the appearance settings for one face of the cards.
type SideConfig struct {
	Font            FontConfig `yaml:"font"`
	TextColor       string     `yaml:"text_color"`
	BackgroundColor string     `yaml:"background_color"`
	BarTop          BarConfig  `yaml:"bar_top"`
	BarBottom       BarConfig  `yaml:"bar_bottom"`
}

type Config struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Columns struct {
		Front string `yaml:"front"`
		Back  string `yaml:"back"`
		Qty   string `yaml:"qty"`
	} `yaml:"columns"`
	UseQtyColumn bool   `yaml:"use_qty_column"`
	Multiplier   int    `yaml:"multiplier"`
	Truncate     bool   `yaml:"truncate"`
	FlipAxis     string `yaml:"flip_axis"`
	Layout       struct {
		CardsPerRow  int     `yaml:"cards_per_row"`
		CardWidthMM  float64 `yaml:"card_width_mm"`
		CardHeightMM float64 `yaml:"card_height_mm"`
	} `yaml:"layout"`
	Page struct {
		WidthMM  float64 `yaml:"width_mm"`
		HeightMM float64 `yaml:"height_mm"`
		Margins  struct {
			Top    float64 `yaml:"top"`
			Bottom float64 `yaml:"bottom"`
			Left   float64 `yaml:"left"`
			Right  float64 `yaml:"right"`
		} `yaml:"margins"`
	} `yaml:"page"`
	Front SideConfig `yaml:"front"`
	Back  SideConfig `yaml:"back"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default mirrors the settings a fresh run starts from: A4 page, two
// business-card-sized columns, Helvetica 12, long-edge flip.
func Default() *Config {
	cfg := &Config{}
	cfg.Output = "cards.pdf"
	cfg.Columns.Front = "front"
	cfg.Columns.Back = "back"
	cfg.Columns.Qty = "qty"
	cfg.UseQtyColumn = true
	cfg.Multiplier = 1
	cfg.FlipAxis = "long"
	cfg.Layout.CardsPerRow = 2
	cfg.Layout.CardWidthMM = 89
	cfg.Layout.CardHeightMM = 51
	cfg.Page.WidthMM = 210
	cfg.Page.HeightMM = 297
	cfg.Page.Margins.Top = 10
	cfg.Page.Margins.Bottom = 10
	cfg.Page.Margins.Left = 10
	cfg.Page.Margins.Right = 10
	cfg.Front = defaultSide()
	cfg.Back = defaultSide()
	return cfg
}

func defaultSide() SideConfig {
	return SideConfig{
		Font:            FontConfig{Family: "Helvetica", Size: 12, Style: "Normal"},
		TextColor:       "#000000",
		BackgroundColor: "#FFFFFF",
		BarTop:          BarConfig{Color: "#FF0000"},
		BarBottom:       BarConfig{Color: "#0000FF"},
	}
}

// Validate rejects configurations the pipeline cannot run with. Geometry
// checks that depend on derived values (cards per column) happen later in
// the grid planner.
func (c *Config) Validate() error {
	if c.Columns.Front == "" || c.Columns.Back == "" {
		return fmt.Errorf("front and back column names are required")
	}
	if c.Multiplier < 1 || c.Multiplier > MaxMultiplier {
		return fmt.Errorf("multiplier must be between 1 and %d, got %d", MaxMultiplier, c.Multiplier)
	}
	if c.FlipAxis != "long" && c.FlipAxis != "short" {
		return fmt.Errorf("flip_axis must be %q or %q, got %q", "long", "short", c.FlipAxis)
	}
	if c.Layout.CardsPerRow <= 0 {
		return fmt.Errorf("cards_per_row must be positive, got %d", c.Layout.CardsPerRow)
	}
	if c.Layout.CardWidthMM <= 0 || c.Layout.CardHeightMM <= 0 {
		return fmt.Errorf("card dimensions must be positive")
	}
	if c.Page.WidthMM <= 0 || c.Page.HeightMM <= 0 {
		return fmt.Errorf("page dimensions must be positive")
	}
	m := c.Page.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	for _, side := range []struct {
		name string
		cfg  SideConfig
	}{{"front", c.Front}, {"back", c.Back}} {
		if side.cfg.Font.Size <= 0 {
			return fmt.Errorf("%s font size must be positive", side.name)
		}
		if err := validateColors(side.name, side.cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateColors(name string, side SideConfig) error {
	colors := map[string]string{
		"text_color":       side.TextColor,
		"background_color": side.BackgroundColor,
	}
	if side.BarTop.Enabled {
		colors["bar_top.color"] = side.BarTop.Color
	}
	if side.BarBottom.Enabled {
		colors["bar_bottom.color"] = side.BarBottom.Color
	}
	for field, val := range colors {
		if !hexColorPattern.MatchString(val) {
			return fmt.Errorf("%s %s: %q is not a #RRGGBB color", name, field, val)
		}
	}
	return nil
}
