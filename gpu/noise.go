package gpu

import (
	"image"
	"image/color"

	"github.com/furui/fastnoiselite-go"
)

// StoneImage renders a grey stone like pattern from layered simplex
// noise. The texture examples upload it instead of shipping an asset.
func StoneImage(width, height int) *image.RGBA {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = 5.0
	noise.SetFractalOctaves(3)

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := fastnoiselite.FNLfloat(float32(x) / float32(width))
			ny := fastnoiselite.FNLfloat(float32(y) / float32(height))

			// noise is in -1 to 1, map to a grey stone palette
			v := float32(noise.GetNoise2D(nx, ny))*0.5 + 0.5

			grey := uint8(96 + v*96)

			img.SetRGBA(x, y, color.RGBA{
				R: grey,
				G: grey,
				B: uint8(float32(grey) * 0.9),
				A: 255,
			})
		}
	}

	return img
}

// NewStoneTexture uploads a procedural stone image as diffuse texture.
func NewStoneTexture(ctx *Context, size uint32) (*Texture, error) {
	return NewTextureFromImage(ctx, StoneImage(int(size), int(size)), "StoneTexture")
}
