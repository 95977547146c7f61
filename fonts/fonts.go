package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFont parses a TTF and registers it under name with the default
// size. Names with no registered TTF fall back to the built-in bitmap
// face, so the game runs without bundled font assets.
func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 16)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse ttf for %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	if f, ok := fonts[name]; ok {
		return f
	}
	return basicfont.Face7x13
}
