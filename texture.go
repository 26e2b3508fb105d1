package gielis

import (
	"bytes"
	"image/color"
	"log/slog"

	"github.com/gogpu/gielis/cache"
)

// Channel selects which part of a shape a texture paints.
type Channel int

const (
	ChannelFill Channel = iota
	ChannelStroke
)

func (ch Channel) String() string {
	if ch == ChannelStroke {
		return "stroke"
	}
	return "fill"
}

// TileKey holds every input of NoiseTile. Equal keys produce identical tiles.
type TileKey struct {
	Scale    float64
	Strength float64
	Color    color.RGBA
}

// TileKeyFor derives the tile inputs of a shape channel. Fill tiles use the
// shape colour and the fill noise parameters; stroke tiles use black and the
// stroke noise parameters.
func TileKeyFor(s Shape, ch Channel) TileKey {
	if ch == ChannelStroke {
		return TileKey{
			Scale:    s.Params.StrokeNoiseScale,
			Strength: s.Params.StrokeNoiseStrength,
			Color:    color.RGBA{A: 255},
		}
	}
	base, err := ParseHex(s.Color)
	if err != nil {
		base = color.RGBA{A: 255}
	}
	return TileKey{
		Scale:    s.Params.FillNoiseScale,
		Strength: s.Params.FillNoiseStrength,
		Color:    base,
	}
}

// Texture is a generated noise tile with its PNG encoding.
// Pixmap and PNG are shared between callers and must not be modified.
type Texture struct {
	Key    TileKey
	Pixmap *Pixmap
	PNG    []byte
}

// DataURL returns the tile as an embeddable image resource.
func (t Texture) DataURL() string {
	return pngDataURL(t.PNG)
}

// DefaultTextureCapacity is the number of tiles a TextureStore keeps.
const DefaultTextureCapacity = 128

// TextureStore serves noise tiles addressed by (shape id, channel). Tiles are
// cached by their inputs, so an unchanged shape never regenerates and any
// colour or noise edit naturally produces a new tile.
type TextureStore struct {
	reg   *Registry
	tiles *cache.Cache[TileKey, Texture]
}

// NewTextureStore creates a store for the shapes of reg holding up to
// capacity tiles (DefaultTextureCapacity if capacity <= 0).
func NewTextureStore(reg *Registry, capacity int) *TextureStore {
	if capacity <= 0 {
		capacity = DefaultTextureCapacity
	}
	return &TextureStore{reg: reg, tiles: cache.New[TileKey, Texture](capacity)}
}

// Tile returns the texture of a shape channel. It reports false when no
// shape has the given id.
func (ts *TextureStore) Tile(id string, ch Channel) (Texture, bool, error) {
	s, ok := ts.reg.Shape(id)
	if !ok {
		return Texture{}, false, nil
	}
	t, err := ts.TileFor(s, ch)
	return t, true, err
}

// TileFor returns the texture of a shape snapshot's channel.
func (ts *TextureStore) TileFor(s Shape, ch Channel) (Texture, error) {
	key := TileKeyFor(s, ch)
	return ts.tiles.GetOrCreate(key, func() (Texture, error) {
		pm := NoiseTile(key.Scale, key.Strength, key.Color)
		var buf bytes.Buffer
		if err := pm.EncodePNG(&buf); err != nil {
			return Texture{}, err
		}
		Logger().Debug("gielis: noise tile generated",
			slog.String("id", s.ID), slog.String("channel", ch.String()), slog.Int("bytes", buf.Len()))
		return Texture{Key: key, Pixmap: pm, PNG: buf.Bytes()}, nil
	})
}

// Stats returns the tile cache counters.
func (ts *TextureStore) Stats() cache.Stats {
	return ts.tiles.Stats()
}
