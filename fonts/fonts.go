package fonts

import (
	"log"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const fontPath = "assets/fonts/main.ttf"

var (
	loadOnce sync.Once
	parsed   *truetype.Font

	facesMu sync.Mutex
	faces   = map[int]font.Face{}
)

// Face returns a cached face at the given pixel size. When no font file
// is bundled it falls back to the built-in bitmap font, which ignores
// the size.
func Face(size float64) font.Face {
	loadOnce.Do(loadFont)
	if parsed == nil {
		return basicfont.Face7x13
	}

	key := int(size)
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[key]; ok {
		return f
	}
	f := truetype.NewFace(parsed, &truetype.Options{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[key] = f
	return f
}

func loadFont() {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("Warning: no font file at %s, using built-in font", fontPath)
		return
	}
	f, err := truetype.Parse(data)
	if err != nil {
		log.Printf("Warning: could not parse font file: %v", err)
		return
	}
	parsed = f
}
