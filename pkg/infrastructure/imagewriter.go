// Package infrastructure provides file and image helpers for the
// dragonbones toolchain.
package infrastructure

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	// Atlas pages are PNG in current exports; older pipelines shipped BMP.
	_ "golang.org/x/image/bmp"

	"github.com/kverran/dragonbones-go/pkg/dragonbones"
	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

// DecodeAtlasPage decodes an atlas page image (PNG or BMP).
func DecodeAtlasPage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas page: %w", err)
	}
	return img, nil
}

// WriteSubTexturePngs crops every sub-texture of the atlas out of the page
// image and writes one PNG per sprite into outDir. A positive scale other
// than 1 resizes each sprite with bilinear filtering; any other scale keeps
// the atlas size. Sub-textures falling
// outside the page bounds are skipped with a warning.
func WriteSubTexturePngs(pageData []byte, atlas *dragonbones.Atlas, outDir string, scale float64, log logger.Logger) error {
	if atlas == nil || len(atlas.SubTexture) == 0 {
		log.LogWarning("WriteSubTexturePngs: No sub-textures to extract")
		return nil
	}

	page, err := DecodeAtlasPage(pageData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create sprite directory: %w", err)
	}

	bounds := page.Bounds()
	for _, tex := range atlas.SubTexture {
		rect := image.Rect(int(tex.X), int(tex.Y), int(tex.X+tex.Width), int(tex.Y+tex.Height))
		if !rect.In(bounds) {
			log.LogWarning("WriteSubTexturePngs: Sub-texture out of page bounds: " + tex.Name)
			continue
		}

		sprite := cropScaled(page, rect, scale)

		outName := sanitizeSpriteName(tex.Name) + ".png"
		if err := writePng(filepath.Join(outDir, outName), sprite); err != nil {
			return err
		}
		log.LogInfo("WriteSubTexturePngs: Wrote sprite: " + outName)
	}

	return nil
}

// cropScaled copies the given page rect into a fresh image, resized by
// scale.
func cropScaled(page image.Image, rect image.Rectangle, scale float64) *image.RGBA {
	w := rect.Dx()
	h := rect.Dy()
	if scale > 0 && scale != 1 {
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), page, rect, draw.Src, nil)
	return out
}

// writePng encodes an image to a PNG file.
func writePng(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sprite file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode sprite png: %w", err)
	}
	return nil
}

// sanitizeSpriteName flattens sub-texture names that carry folder
// separators into safe file names.
func sanitizeSpriteName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		return "unnamed"
	}
	return name
}
