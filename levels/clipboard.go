package levels

import (
	"fmt"

	"github.com/milk9111/speedgame/common"
	"gopkg.in/yaml.v3"
)

// PlatformSpec is the text form of a platform used for copy and paste.
type PlatformSpec struct {
	X        float32  `yaml:"x"`
	Y        float32  `yaml:"y"`
	W        float32  `yaml:"w"`
	H        float32  `yaml:"h"`
	Friction *float32 `yaml:"friction,omitempty"`
}

type platformsDoc struct {
	Platforms []PlatformSpec `yaml:"platforms"`
}

func (s PlatformSpec) Platform() Platform {
	p := NewPlatform(common.V(s.X, s.Y), common.V(s.W, s.H))
	if s.Friction != nil {
		p.Friction = *s.Friction
	}
	return p
}

func SpecFor(p Platform) PlatformSpec {
	f := p.Friction
	return PlatformSpec{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y, Friction: &f}
}

// MarshalPlatformsYAML renders platforms as a YAML document.
func MarshalPlatformsYAML(ps []Platform) ([]byte, error) {
	doc := platformsDoc{Platforms: make([]PlatformSpec, len(ps))}
	for i, p := range ps {
		doc.Platforms[i] = SpecFor(p)
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshal platforms: %w", err)
	}
	return data, nil
}

// UnmarshalPlatformsYAML parses a document produced by MarshalPlatformsYAML.
// Platforms with a negative size are rejected.
func UnmarshalPlatformsYAML(data []byte) ([]Platform, error) {
	var doc platformsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal platforms: %w", err)
	}
	out := make([]Platform, 0, len(doc.Platforms))
	for i, s := range doc.Platforms {
		if s.W < 0 || s.H < 0 {
			return nil, fmt.Errorf("unmarshal platforms: platform %d has negative size", i)
		}
		out = append(out, s.Platform())
	}
	return out, nil
}
