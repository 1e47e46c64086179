package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ColorConfig holds CSS-style hex colors: #rgb, #rgba, #rrggbb or #rrggbbaa.
type ColorConfig struct {
	Background  string `yaml:"background"`
	Platform    string `yaml:"platform"`
	Selected    string `yaml:"selected"`
	Preview     string `yaml:"preview"`
	Selection   string `yaml:"selection"`
	Ghost       string `yaml:"ghost"`
	PlayerStart string `yaml:"player_start"`
	Button      string `yaml:"button"`
}

// Palette is ColorConfig with every entry parsed.
type Palette struct {
	Background  color.NRGBA
	Platform    color.NRGBA
	Selected    color.NRGBA
	Preview     color.NRGBA
	Selection   color.NRGBA
	Ghost       color.NRGBA
	PlayerStart color.NRGBA
	Button      color.NRGBA
}

func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		key string
		hex string
		dst *color.NRGBA
	}{
		{"background", c.Background, &p.Background},
		{"platform", c.Platform, &p.Platform},
		{"selected", c.Selected, &p.Selected},
		{"preview", c.Preview, &p.Preview},
		{"selection", c.Selection, &p.Selection},
		{"ghost", c.Ghost, &p.Ghost},
		{"player_start", c.PlayerStart, &p.PlayerStart},
		{"button", c.Button, &p.Button},
	} {
		col, err := parseColor("colors."+f.key, f.hex)
		if err != nil {
			return Palette{}, err
		}
		*f.dst = col
	}
	return p, nil
}

// parseColor decodes one palette entry. Shorthand forms repeat each digit,
// so #f80 is #ff8800, and a missing alpha is opaque.
func parseColor(key, v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) == 3 || len(s) == 4 {
		var long strings.Builder
		for i := 0; i < len(s); i++ {
			long.WriteByte(s[i])
			long.WriteByte(s[i])
		}
		s = long.String()
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%s: %q is not #rgb, #rgba, #rrggbb or #rrggbbaa", key, v)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%s: %q: %w", key, v, err)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}
