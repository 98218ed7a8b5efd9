package formats

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// DecodeImage turns a level image into a grid. Each cellSize×cellSize block
// is one tile, read from its top-left pixel with exact colour matching.
func DecodeImage(data []byte, cellSize int) (*core.Grid, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return GridFromImage(img, cellSize, format)
}

// GridFromImage maps an already decoded image to a grid.
func GridFromImage(img image.Image, cellSize int, format string) (*core.Grid, error) {
	if cellSize <= 0 {
		cellSize = 1
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%s image: %w", format, core.ErrEmptyLevel)
	}
	if b.Dx()%cellSize != 0 || b.Dy()%cellSize != 0 {
		return nil, fmt.Errorf("%s image %dx%d with cell %d: %w",
			format, b.Dx(), b.Dy(), cellSize, ErrIrregularSheet)
	}

	g := core.NewGrid(b.Dx()/cellSize, b.Dy()/cellSize)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			// Non-premultiplied so translucent pixels keep their exact RGB.
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x*cellSize, b.Min.Y+y*cellSize)).(color.NRGBA)
			g.SetKind(x, y, core.KindFromRGBA(c.R, c.G, c.B, c.A))
		}
	}
	return g, nil
}
