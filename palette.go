package qrend

// Palette is a named set of colors for hosts that want a coherent look
// without picking colors quad by quad. It is plain data; nothing in the
// render path depends on it.
type Palette struct {
	// Foreground and Background are the primary drawing pair.
	Foreground Color
	Background Color

	// Foreground2 and Background2 are softer variants for secondary
	// elements.
	Foreground2 Color
	Background2 Color

	// Surface is a neutral fill for empty regions.
	Surface Color

	// Accents are high-saturation fills, typically cycled per element.
	Accents []Color
}

// Accent returns the i'th accent color, wrapping around the slice.
// Returns the palette foreground if there are no accents.
func (p Palette) Accent(i int) Color {
	if len(p.Accents) == 0 {
		return p.Foreground
	}
	if i < 0 {
		i = -i
	}
	return p.Accents[i%len(p.Accents)]
}

// Shared accent set. Both palettes keep the same accents so elements do
// not change hue when the host flips between light and dark.
func accents() []Color {
	return []Color{
		RGB8(0, 255, 255),  // cyan
		RGB8(0, 0, 255),    // blue
		RGB8(255, 165, 0),  // orange
		RGB8(255, 255, 0),  // yellow
		RGB8(0, 255, 0),    // green
		RGB8(160, 32, 240), // purple
		RGB8(255, 0, 0),    // red
	}
}

// PaletteLight returns the light palette: dark marks on a bright field.
func PaletteLight() Palette {
	return Palette{
		Foreground:  RGB8(30, 30, 30),
		Background:  RGB8(230, 230, 230),
		Foreground2: RGB8(50, 50, 50),
		Background2: RGB8(200, 200, 200),
		Surface:     RGB8(160, 160, 160),
		Accents:     accents(),
	}
}

// PaletteDark returns the dark palette: the light palette with each
// foreground/background pair swapped. Accents and surface are shared.
func PaletteDark() Palette {
	return Palette{
		Foreground:  RGB8(230, 230, 230),
		Background:  RGB8(30, 30, 30),
		Foreground2: RGB8(200, 200, 200),
		Background2: RGB8(50, 50, 50),
		Surface:     RGB8(160, 160, 160),
		Accents:     accents(),
	}
}
