// Command qrenddemo demonstrates the qrend quad renderer without a GPU.
//
// It builds a layered block scene, runs every vertex through the reference
// transform, and rasterizes the result to a PNG. The output pixels match
// what the GPU pipeline produces for the same layers.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/qrend"
)

const (
	blockSize = 24
	blockGap  = 1
	wellCols  = 10
	wellRows  = 20
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
		dark   = flag.Bool("dark", false, "use the dark palette")
	)
	flag.Parse()

	palette := qrend.PaletteLight()
	if *dark {
		palette = qrend.PaletteDark()
	}

	extent := qrend.FloatExtent(float32(*width), float32(*height))
	if !extent.Valid() {
		log.Fatalf("Invalid extent %s", extent)
	}

	layers := buildScene(palette, *width, *height)

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	for _, layer := range layers {
		if !layer.Visible() {
			continue
		}
		for _, q := range layer.Quads() {
			fillQuad(img, q, extent)
		}
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d layers)\n", *output, *width, *height, len(layers))
}

// buildScene assembles the demo layers: a full-canvas background, the well
// grid, a stack of settled blocks with a falling piece, and a preview box.
func buildScene(palette qrend.Palette, w, h int) []*qrend.Layer {
	wellW := wellCols * blockSize
	wellH := wellRows * blockSize
	originX := (w - wellW) / 2
	originY := (h - wellH) / 2

	background := qrend.NewLayer("background")
	background.Push(qrend.Quad{W: float32(w), H: float32(h), Color: palette.Background})

	well := qrend.NewLayer("well")
	well.Push(qrend.Quad{
		X: float32(originX - blockGap), Y: float32(originY - blockGap),
		W: float32(wellW + 2*blockGap), H: float32(wellH + 2*blockGap),
		Color: palette.Foreground2,
	})
	for row := 0; row < wellRows; row++ {
		for col := 0; col < wellCols; col++ {
			well.Push(cellQuad(originX, originY, col, row, palette.Surface))
		}
	}

	blocks := qrend.NewLayer("blocks")
	// A settled stack along the bottom rows.
	stack := [][2]int{
		{0, 19}, {1, 19}, {2, 19}, {4, 19}, {5, 19}, {6, 19}, {7, 19}, {9, 19},
		{0, 18}, {1, 18}, {4, 18}, {5, 18}, {9, 18},
		{0, 17}, {4, 17}, {9, 17},
	}
	for i, cell := range stack {
		blocks.Push(cellQuad(originX, originY, cell[0], cell[1], palette.Accent(i)))
	}
	// A falling S piece mid-well.
	piece := [][2]int{{4, 7}, {5, 7}, {5, 6}, {6, 6}}
	for _, cell := range piece {
		blocks.Push(cellQuad(originX, originY, cell[0], cell[1], palette.Accent(4)))
	}

	hud := qrend.NewLayer("hud")
	previewX := originX + wellW + 2*blockSize
	previewY := originY
	hud.Push(qrend.Quad{
		X: float32(previewX), Y: float32(previewY),
		W: 6 * blockSize, H: 6 * blockSize,
		Color: palette.Background2,
	})
	for _, cell := range [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}} {
		hud.Push(cellQuad(previewX, previewY, cell[0], cell[1], palette.Accent(0)))
	}

	return []*qrend.Layer{background, well, blocks, hud}
}

// cellQuad returns the quad for one grid cell, inset by the block gap.
func cellQuad(originX, originY, col, row int, c qrend.Color) qrend.Quad {
	return qrend.Quad{
		X:     float32(originX + col*blockSize + blockGap),
		Y:     float32(originY + row*blockSize + blockGap),
		W:     blockSize - 2*blockGap,
		H:     blockSize - 2*blockGap,
		Color: c,
	}
}

// fillQuad rasterizes one quad. The top-left and bottom-right corners go
// through the reference vertex transform to clip space, then through the
// viewport transform back to framebuffer pixels, so coverage is exactly
// the GPU's. Overwrite matches the pipeline's replace blending.
func fillQuad(img *image.RGBA, q qrend.Quad, e qrend.Extent) {
	w := float32(img.Bounds().Dx())
	h := float32(img.Bounds().Dy())

	tl, col := qrend.TransformVertex(0, q, e)
	br, _ := qrend.TransformVertex(3, q, e)
	out := qrend.FragmentColor(col)

	x0 := int((tl[0] + 1) / 2 * w)
	y0 := int((1 - tl[1]) / 2 * h)
	x1 := int((br[0] + 1) / 2 * w)
	y1 := int((1 - br[1]) / 2 * h)

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}

	c := color.RGBA{
		R: uint8(out[0]*255 + 0.5),
		G: uint8(out[1]*255 + 0.5),
		B: uint8(out[2]*255 + 0.5),
		A: uint8(out[3]*255 + 0.5),
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
