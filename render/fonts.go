package render

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/platformer"
)

// FontCache loads TrueType faces from a directory on first use and keeps
// them for the life of the renderer. Families that cannot be loaded fall
// back to a fixed bitmap face.
type FontCache struct {
	dir      string
	sources  map[string]*text.GoTextFaceSource
	faces    map[platformer.Font]text.Face
	failed   map[string]bool
	fallback text.Face
}

// NewFontCache creates a cache reading font files from dir.
func NewFontCache(dir string) *FontCache {
	return &FontCache{
		dir:      dir,
		sources:  make(map[string]*text.GoTextFaceSource),
		faces:    make(map[platformer.Font]text.Face),
		failed:   make(map[string]bool),
		fallback: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Face returns the face for f, loading its family on first use.
func (c *FontCache) Face(f platformer.Font) text.Face {
	if face, ok := c.faces[f]; ok {
		return face
	}
	src, err := c.source(f.Family)
	if err != nil || f.Size <= 0 {
		if err != nil && !c.failed[f.Family] {
			c.failed[f.Family] = true
			log.Printf("render: %v; using fallback font", err)
		}
		c.faces[f] = c.fallback
		return c.fallback
	}
	face := &text.GoTextFace{Source: src, Size: float64(f.Size)}
	c.faces[f] = face
	return face
}

// Fallback returns the face used for families that failed to load.
func (c *FontCache) Fallback() text.Face {
	return c.fallback
}

func (c *FontCache) source(family string) (*text.GoTextFaceSource, error) {
	if src, ok := c.sources[family]; ok {
		return src, nil
	}
	if family == "" {
		return nil, fmt.Errorf("render: empty font family")
	}
	data, err := os.ReadFile(filepath.Join(c.dir, family))
	if err != nil {
		return nil, fmt.Errorf("render: font %s: %w", family, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse font %s: %w", family, err)
	}
	c.sources[family] = src
	return src, nil
}
