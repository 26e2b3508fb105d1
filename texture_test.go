package gielis

import (
	"bytes"
	"image/color"
	"sync"
	"testing"
)

func TestTextureStoreCachesByContent(t *testing.T) {
	reg := NewRegistry()
	s := reg.AddShape(Point{})
	if err := reg.UpdateParam(s.ID, "fillNoiseScale", 0.5); err != nil {
		t.Fatal(err)
	}
	if err := reg.UpdateParam(s.ID, "fillNoiseStrength", 0.2); err != nil {
		t.Fatal(err)
	}

	ts := NewTextureStore(reg, 0)
	a, ok, err := ts.Tile(s.ID, ChannelFill)
	if err != nil || !ok {
		t.Fatalf("Tile: ok=%v err=%v", ok, err)
	}
	b, _, _ := ts.Tile(s.ID, ChannelFill)
	if a.Pixmap != b.Pixmap {
		t.Error("unchanged shape should reuse the cached tile")
	}
	if st := ts.Stats(); st.Hits != 1 || st.Misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %+v", st)
	}

	if err := reg.SetColor(s.ID, "#102030"); err != nil {
		t.Fatal(err)
	}
	c, _, _ := ts.Tile(s.ID, ChannelFill)
	if bytes.Equal(a.PNG, c.PNG) {
		t.Error("colour edit should produce a different tile")
	}
	if c.Key.Color != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Errorf("tile colour = %v", c.Key.Color)
	}
}

func TestTextureStoreStrokeUsesBlack(t *testing.T) {
	reg := NewRegistry()
	s := reg.AddShape(Point{})
	ts := NewTextureStore(reg, 4)

	tex, ok, err := ts.Tile(s.ID, ChannelStroke)
	if err != nil || !ok {
		t.Fatalf("Tile: ok=%v err=%v", ok, err)
	}
	if got := tex.Pixmap.RGBAAt(10, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("stroke pixel = %v, want opaque black", got)
	}
	if tex.DataURL() == "" {
		t.Error("empty data URL")
	}
}

func TestTextureStoreUnknownShape(t *testing.T) {
	ts := NewTextureStore(NewRegistry(), 4)
	if _, ok, err := ts.Tile("missing", ChannelFill); ok || err != nil {
		t.Errorf("Tile(missing) = ok %v, err %v; want false, nil", ok, err)
	}
}

func TestTextureStoreConcurrentGeneratesOnce(t *testing.T) {
	reg := NewRegistry()
	s := reg.AddShape(Point{})
	ts := NewTextureStore(reg, 4)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ts.TileFor(s, ChannelFill); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if st := ts.Stats(); st.Misses != 1 || st.Hits != 7 {
		t.Errorf("expected 1 miss / 7 hits, got %+v", st)
	}
}
