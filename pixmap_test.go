package gielis

import (
	"image/color"
	"testing"
)

func TestPixmapSetRGBA(t *testing.T) {
	pm := NewPixmap(4, 3)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	pm.SetRGBA(3, 2, c)

	if got := pm.RGBAAt(3, 2); got != c {
		t.Errorf("RGBAAt = %v, want %v", got, c)
	}
	if got := pm.Data()[(2*4+3)*4:]; got[0] != 1 || got[3] != 4 {
		t.Errorf("Data layout = %v", got[:4])
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetRGBA(-1, 0, color.RGBA{A: 255})
	pm.SetRGBA(2, 0, color.RGBA{A: 255})
	pm.SetRGBA(0, 5, color.RGBA{A: 255})

	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds writes must be ignored")
		}
	}
	if got := pm.RGBAAt(9, 9); got != (color.RGBA{}) {
		t.Errorf("RGBAAt out of bounds = %v", got)
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetRGBA(1, 1, color.RGBA{G: 200, A: 255})

	img := pm.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("ToImage bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{G: 200, A: 255}) {
		t.Errorf("ToImage pixel = %v", got)
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel should be RGBA")
	}
	if r, g, _, _ := pm.At(1, 1).RGBA(); r != 0 || g>>8 != 200 {
		t.Errorf("At = %v", pm.At(1, 1))
	}
}
