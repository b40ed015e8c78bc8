package qrend

import "testing"

func TestPaletteLightDarkSwap(t *testing.T) {
	light := PaletteLight()
	dark := PaletteDark()

	if dark.Foreground != light.Background || dark.Background != light.Foreground {
		t.Error("dark palette should swap the primary pair")
	}
	if dark.Foreground2 != light.Background2 || dark.Background2 != light.Foreground2 {
		t.Error("dark palette should swap the secondary pair")
	}
	if dark.Surface != light.Surface {
		t.Error("surface color should be shared")
	}

	if len(light.Accents) != len(dark.Accents) {
		t.Fatal("accent counts differ")
	}
	for i := range light.Accents {
		if light.Accents[i] != dark.Accents[i] {
			t.Errorf("accent %d differs between palettes", i)
		}
	}
}

func TestPalette_Accent(t *testing.T) {
	p := PaletteLight()
	n := len(p.Accents)
	if n == 0 {
		t.Fatal("light palette has no accents")
	}

	if p.Accent(0) != p.Accents[0] {
		t.Error("Accent(0) != Accents[0]")
	}
	// Indices wrap around the slice.
	if p.Accent(n) != p.Accents[0] {
		t.Error("Accent(n) should wrap to Accents[0]")
	}
	if p.Accent(n+2) != p.Accents[2%n] {
		t.Error("Accent(n+2) should wrap")
	}
	// Negative indices reflect rather than panic.
	if p.Accent(-1) != p.Accents[1%n] {
		t.Error("Accent(-1) should not panic and should pick a valid accent")
	}

	empty := Palette{Foreground: Black}
	if empty.Accent(3) != Black {
		t.Error("Accent on empty palette should return Foreground")
	}
}
