package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step types understood by the generation pipeline.
const (
	StepBorder    = "border"
	StepEdges     = "edges"
	StepPadding   = "padding"
	StepTransform = "transform"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

const (
	defaultCount  = 1
	defaultScale  = 8
	defaultUnit   = "px"
	defaultFormat = FormatSVG
)

// Config represents a sprite generation document.
type Config struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required,slug,max=100"`
	Description string  `yaml:"description,omitempty"`
	Seed        *uint64 `yaml:"seed,omitempty"`
	Count       int     `yaml:"count,omitempty" validate:"omitempty,min=1,max=1024"`
	Sprite      Sprite  `yaml:"sprite"`
	Steps       []Step  `yaml:"steps,omitempty" validate:"omitempty,dive"`
	Output      Output  `yaml:"output,omitempty"`
}

// Sprite configures the base sprite generator.
type Sprite struct {
	Dimensions         []float64      `yaml:"dimensions,omitempty" validate:"omitempty,len=2"`
	BlankPercentage    *float64       `yaml:"blank_percentage,omitempty"`
	Palette            []string       `yaml:"palette,omitempty" validate:"omitempty,dive,argb_hex"`
	RandomPalette      *RandomPalette `yaml:"random_palette,omitempty"`
	Border             Border         `yaml:"border,omitempty"`
	HorizontalSymmetry bool           `yaml:"horizontal_symmetry,omitempty"`
	BlankColor         string         `yaml:"blank_color,omitempty" validate:"omitempty,argb_hex"`
}

// RandomPalette requests a freshly sampled palette for every sprite.
type RandomPalette struct {
	Count       int  `yaml:"count" validate:"required,min=1,max=256"`
	RandomAlpha bool `yaml:"random_alpha,omitempty"`
}

// Border holds per-side widths in up, right, down, left order. In YAML it is
// either a single number applied to every side or a list of four.
type Border struct {
	Sides []float64
}

// IsSet reports whether the border appeared in the document.
func (b Border) IsSet() bool {
	return b.Sides != nil
}

// UnmarshalYAML accepts the scalar shorthand as well as the list form.
func (b *Border) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var width float64
		if err := value.Decode(&width); err != nil {
			return err
		}
		b.Sides = []float64{width, width, width, width}
	case yaml.SequenceNode:
		var sides []float64
		if err := value.Decode(&sides); err != nil {
			return err
		}
		b.Sides = sides
	default:
		return fmt.Errorf("line %d: border must be a number or a list of four numbers", value.Line)
	}
	return nil
}

// MarshalYAML writes the list form.
func (b Border) MarshalYAML() (interface{}, error) {
	return b.Sides, nil
}

// Step describes one compositing operation applied after the fill.
type Step struct {
	Type string `yaml:"type" validate:"required,step_type"`

	Border    *BorderStep    `yaml:",inline,omitempty" validate:"-"`
	Edges     *EdgesStep     `yaml:",inline,omitempty" validate:"-"`
	Padding   *PaddingStep   `yaml:",inline,omitempty" validate:"-"`
	Transform *TransformStep `yaml:",inline,omitempty" validate:"-"`
}

// ID returns a stable identifier for the step at index.
func (s Step) ID(index int) string {
	return fmt.Sprintf("%s#%d", s.Type, index)
}

// UnmarshalYAML customises step decoding to populate type-specific structures without conflicts.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	type baseStep struct {
		Type string `yaml:"type"`
	}

	var base baseStep
	if err := value.Decode(&base); err != nil {
		return err
	}

	s.Type = strings.TrimSpace(base.Type)
	s.Border = nil
	s.Edges = nil
	s.Padding = nil
	s.Transform = nil

	switch s.Type {
	case StepBorder:
		var border BorderStep
		if err := value.Decode(&border); err != nil {
			return err
		}
		s.Border = &border
	case StepEdges:
		var edges EdgesStep
		if err := value.Decode(&edges); err != nil {
			return err
		}
		s.Edges = &edges
	case StepPadding:
		var padding PaddingStep
		if err := value.Decode(&padding); err != nil {
			return err
		}
		s.Padding = &padding
	case StepTransform:
		var transform TransformStep
		if err := value.Decode(&transform); err != nil {
			return err
		}
		s.Transform = &transform
	}

	return nil
}

// BorderStep surrounds the sprite with a border. An unset border uses the
// sprite-level default.
type BorderStep struct {
	Border Border `yaml:"border,omitempty"`
	Color  string `yaml:"color,omitempty" validate:"omitempty,argb_hex"`
}

// EdgesStep outlines the sprite silhouette.
type EdgesStep struct {
	Color       string   `yaml:"color,omitempty" validate:"omitempty,argb_hex"`
	Weight      *float64 `yaml:"weight,omitempty"`
	ExtraBorder *bool    `yaml:"extra_border,omitempty"`
}

// PaddingStep centers the sprite on a larger canvas.
type PaddingStep struct {
	Dimensions []float64 `yaml:"dimensions" validate:"required,len=2"`
	Color      string    `yaml:"color,omitempty" validate:"omitempty,argb_hex"`
}

// TransformStep applies a named per-pixel transform.
type TransformStep struct {
	Transform string `yaml:"transform" validate:"required,oneof=fade vignette"`
	Color     string `yaml:"color,omitempty" validate:"omitempty,argb_hex"`
}

// Output controls how generated sprites are rendered.
type Output struct {
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=svg png"`
	// Scale is the size in output units of one sprite pixel.
	Scale int    `yaml:"scale,omitempty" validate:"omitempty,min=1,max=128"`
	Unit  string `yaml:"unit,omitempty" validate:"omitempty,oneof=px pt pc mm cm in em"`
}

func (c *Config) applyDefaults() {
	if c.Count == 0 {
		c.Count = defaultCount
	}
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	if c.Output.Scale == 0 {
		c.Output.Scale = defaultScale
	}
	if c.Output.Unit == "" {
		c.Output.Unit = defaultUnit
	}
}
