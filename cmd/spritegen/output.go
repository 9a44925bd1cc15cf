package main

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/spritegen/internal/render"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

// writeSprite encodes s into a new file at path.
func writeSprite(path string, s *sprite.Sprite, opts render.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := render.Encode(f, s, opts); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
