package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/milk9111/speedgame/common"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultYAML []byte

// Config holds the editor settings that can be changed without rebuilding.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Menu   MenuConfig   `yaml:"menu"`
	Keys   KeyConfig    `yaml:"keys"`
	Save   SaveConfig   `yaml:"save"`
	Colors ColorConfig  `yaml:"colors"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Rect is a screen-space hit region.
type Rect struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

type MenuConfig struct {
	Open Rect `yaml:"open"`
	Quit Rect `yaml:"quit"`
}

// KeyConfig names the single-letter keys bound to editing actions.
type KeyConfig struct {
	Select   string `yaml:"select"`
	Platform string `yaml:"platform"`
	Move     string `yaml:"move"`
	Lint     string `yaml:"lint"`
}

type SaveConfig struct {
	Filter      string `yaml:"filter"`
	DefaultFile string `yaml:"default_file"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{Title: "speedgame level editor", Width: common.BaseWidth, Height: common.BaseHeight},
		Menu: MenuConfig{
			Open: Rect{X: 250, Y: 100, W: 100, H: 100},
			Quit: Rect{X: 100, Y: 100, W: 100, H: 100},
		},
		Keys: KeyConfig{Select: "S", Platform: "P", Move: "M", Lint: "L"},
		Save: SaveConfig{Filter: "Speed Game Level Data", DefaultFile: "out.sgld"},
		Colors: ColorConfig{
			Background:  "#202028",
			Platform:    "#ffffff",
			Selected:    "#ffd700",
			Preview:     "#ffffffc0",
			Selection:   "#ff0000",
			Ghost:       "#ffffff80",
			PlayerStart: "#ff3030",
			Button:      "#3a3a48",
		},
	}
}

// Load reads a YAML config from path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// KeyLetter returns the upper-case letter a key name refers to. Only single
// letters can be bound.
func KeyLetter(name string) (byte, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return 0, fmt.Errorf("unsupported key %q, want a single letter", name)
	}
	return s[0], nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	for name, r := range map[string]Rect{"menu.open": c.Menu.Open, "menu.quit": c.Menu.Quit} {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("%s: size must be positive", name))
		}
	}

	seen := map[string]string{}
	for _, k := range []struct{ name, key string }{
		{"keys.select", c.Keys.Select},
		{"keys.platform", c.Keys.Platform},
		{"keys.move", c.Keys.Move},
		{"keys.lint", c.Keys.Lint},
	} {
		if strings.TrimSpace(k.key) == "" {
			errs = append(errs, fmt.Errorf("%s: empty", k.name))
			continue
		}
		letter, err := KeyLetter(k.key)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k.name, err))
			continue
		}
		key := string(letter)
		if other, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s: %q already bound to %s", k.name, key, other))
			continue
		}
		seen[key] = k.name
	}

	if c.Save.DefaultFile == "" {
		errs = append(errs, errors.New("save.default_file: empty"))
	}
	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
