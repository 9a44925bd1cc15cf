package pipeline

import (
	"fmt"

	"github.com/alexisbeaulieu97/spritegen/internal/config"
	"github.com/alexisbeaulieu97/spritegen/pkg/builder"
	"github.com/alexisbeaulieu97/spritegen/pkg/color"
)

// stepFunc applies one configured compositing step to a builder holding a sprite.
type stepFunc func(b *builder.Builder) *builder.Builder

// builderOptions translates the sprite block into builder options.
func builderOptions(s config.Sprite) ([]builder.Option, error) {
	var opts []builder.Option

	if len(s.Dimensions) == 2 {
		opts = append(opts, builder.WithDimensions(int(s.Dimensions[0]), int(s.Dimensions[1])))
	}
	if s.BlankPercentage != nil {
		opts = append(opts, builder.WithBlankPercentage(*s.BlankPercentage))
	}
	if len(s.Palette) > 0 {
		palette, err := parseColors(s.Palette, "sprite.palette")
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithPalette(palette...))
	}
	if s.RandomPalette != nil {
		opts = append(opts, builder.WithRandomPalette(s.RandomPalette.Count, s.RandomPalette.RandomAlpha))
	}
	if s.Border.IsSet() {
		sides := intSides(s.Border)
		opts = append(opts, builder.WithBorder(sides[0], sides[1], sides[2], sides[3]))
	}
	if s.HorizontalSymmetry {
		opts = append(opts, builder.WithHorizontalSymmetry(true))
	}
	if s.BlankColor != "" {
		blank, err := color.FromHexa(s.BlankColor)
		if err != nil {
			return nil, fmt.Errorf("sprite.blank_color: %w", err)
		}
		opts = append(opts, builder.WithBlankColor(blank))
	}

	return opts, nil
}

// compileStep resolves a configured step into a stepFunc, decoding its colors once.
func compileStep(index int, step config.Step) (stepFunc, error) {
	switch step.Type {
	case config.StepBorder:
		if step.Border == nil {
			return nil, fmt.Errorf("%s: missing border configuration", step.ID(index))
		}
		var sides []int
		if step.Border.Border.IsSet() {
			all := intSides(step.Border.Border)
			sides = all[:]
		}
		if step.Border.Color == "" {
			return func(b *builder.Builder) *builder.Builder { return b.WithBorder(sides...) }, nil
		}
		c, err := color.FromHexa(step.Border.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.ID(index), err)
		}
		return func(b *builder.Builder) *builder.Builder { return b.WithBorderColor(c, sides...) }, nil

	case config.StepEdges:
		if step.Edges == nil {
			return nil, fmt.Errorf("%s: missing edges configuration", step.ID(index))
		}
		edge := color.Black
		if step.Edges.Color != "" {
			c, err := color.FromHexa(step.Edges.Color)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", step.ID(index), err)
			}
			edge = c
		}
		weight := builder.DefaultEdgeWeight
		if step.Edges.Weight != nil {
			weight = *step.Edges.Weight
		}
		extra := true
		if step.Edges.ExtraBorder != nil {
			extra = *step.Edges.ExtraBorder
		}
		return func(b *builder.Builder) *builder.Builder { return b.WithEdges(edge, weight, extra) }, nil

	case config.StepPadding:
		if step.Padding == nil || len(step.Padding.Dimensions) != 2 {
			return nil, fmt.Errorf("%s: missing padding dimensions", step.ID(index))
		}
		width, height := int(step.Padding.Dimensions[0]), int(step.Padding.Dimensions[1])
		if step.Padding.Color == "" {
			return func(b *builder.Builder) *builder.Builder { return b.WithPadding(width, height) }, nil
		}
		c, err := color.FromHexa(step.Padding.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.ID(index), err)
		}
		return func(b *builder.Builder) *builder.Builder { return b.WithPaddingColor(width, height, c) }, nil

	case config.StepTransform:
		if step.Transform == nil {
			return nil, fmt.Errorf("%s: missing transform configuration", step.ID(index))
		}
		target := color.Black
		if step.Transform.Color != "" {
			c, err := color.FromHexa(step.Transform.Color)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", step.ID(index), err)
			}
			target = c
		}
		var fn builder.TransformFunc
		switch step.Transform.Transform {
		case "fade":
			fn = builder.FadeTo(target)
		case "vignette":
			fn = builder.VignetteTo(target)
		default:
			return nil, fmt.Errorf("%s: unknown transform %q", step.ID(index), step.Transform.Transform)
		}
		return func(b *builder.Builder) *builder.Builder { return b.Transform(fn) }, nil
	}

	return nil, fmt.Errorf("%s: unknown step type %q", step.ID(index), step.Type)
}

func parseColors(values []string, field string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(values))
	for i, v := range values {
		c, err := color.FromHexa(v)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func intSides(b config.Border) [4]int {
	var sides [4]int
	for i := range sides {
		if i < len(b.Sides) {
			sides[i] = int(b.Sides[i])
		}
	}
	return sides
}
