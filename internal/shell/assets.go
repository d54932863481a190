package shell

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jason-s-yu/solitaire/engine"
)

// Colour keys: pixels of exactly this colour are transparent.
var (
	textureKey = color.RGBA{255, 0, 255, 255}
	fontKey    = color.RGBA{255, 255, 255, 255}
)

var textureFiles = map[engine.Texture]string{
	engine.TextureCards:       "cards.png",
	engine.TextureOutline:     "outline.png",
	engine.TextureKingOutline: "king.png",
	engine.TextureFoundations: "foundations.png",
}

const (
	fontImage  = "font.png"
	fontGlyphs = "font.txt"
)

// Font is a bitmap font: a white-on-transparent glyph sheet and the region of
// each glyph in it.
type Font struct {
	sheet  *ebiten.Image
	glyphs map[rune]engine.Rect
}

// Assets holds every texture and font a game draws with.
type Assets struct {
	textures map[engine.Texture]*ebiten.Image
	fonts    map[engine.Font]*Font
}

// LoadAssets reads the textures and the menu font from dir.
func LoadAssets(dir string) (*Assets, error) {
	a := &Assets{
		textures: make(map[engine.Texture]*ebiten.Image, len(textureFiles)),
		fonts:    make(map[engine.Font]*Font, 1),
	}
	for t, name := range textureFiles {
		img, err := loadKeyed(filepath.Join(dir, name), textureKey)
		if err != nil {
			return nil, err
		}
		a.textures[t] = ebiten.NewImageFromImage(img)
	}

	sheet, err := loadKeyed(filepath.Join(dir, fontImage), fontKey)
	if err != nil {
		return nil, err
	}
	whiten(sheet)
	f, err := os.Open(filepath.Join(dir, fontGlyphs))
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	defer f.Close()
	glyphs, err := parseGlyphs(f)
	if err != nil {
		return nil, fmt.Errorf("shell: %s: %w", fontGlyphs, err)
	}
	a.fonts[engine.FontMenu] = &Font{sheet: ebiten.NewImageFromImage(sheet), glyphs: glyphs}
	return a, nil
}

func loadKeyed(path string, key color.RGBA) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	defer f.Close()
	img, err := decodeKeyed(f, key)
	if err != nil {
		return nil, fmt.Errorf("shell: %s: %w", path, err)
	}
	return img, nil
}

// decodeKeyed decodes a PNG and clears every pixel matching key.
func decodeKeyed(r io.Reader, key color.RGBA) (*image.RGBA, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	applyKey(img, key)
	return img, nil
}

func applyKey(img *image.RGBA, key color.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]
		if p[0] == key.R && p[1] == key.G && p[2] == key.B && p[3] == key.A {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		}
	}
}

// whiten turns every visible pixel opaque white so glyphs can be tinted with
// a colour scale.
func whiten(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 0 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 255, 255, 255, 255
		}
	}
}

// parseGlyphs reads one glyph per line as "<char> <x> <y> <w> <h>". Blank
// lines and lines starting with '#' are skipped.
func parseGlyphs(r io.Reader) (map[rune]engine.Rect, error) {
	glyphs := make(map[rune]engine.Rect)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ch, size := utf8.DecodeRuneInString(text)
		fields := strings.Fields(text[size:])
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want a character and 4 numbers, got %q", line, text)
		}
		var n [4]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: bad number %q", line, f)
			}
			n[i] = v
		}
		glyphs[ch] = engine.Rect{X: n[0], Y: n[1], W: n[2], H: n[3]}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return glyphs, nil
}
