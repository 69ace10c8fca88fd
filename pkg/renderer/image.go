package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// ToImage converts a row-major packed pixel buffer into an RGBA image
func ToImage(buffer []uint32, width, height int) (*image.RGBA, error) {
	if len(buffer) != width*height {
		return nil, fmt.Errorf("buffer has %d pixels, want %dx%d", len(buffer), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgb := core.ToRGB(buffer[y*width+x])
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img, nil
}

// SavePNG writes img to path as a PNG file
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
