package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoneImageSize(t *testing.T) {
	img := StoneImage(64, 32)

	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())
}

func TestStoneImageIsOpaque(t *testing.T) {
	img := StoneImage(16, 16)

	for i := 3; i < len(img.Pix); i += 4 {
		require.Equal(t, uint8(255), img.Pix[i])
	}
}

func TestStoneImageDeterministic(t *testing.T) {
	a := StoneImage(32, 32)
	b := StoneImage(32, 32)

	require.Equal(t, a.Pix, b.Pix)
}
