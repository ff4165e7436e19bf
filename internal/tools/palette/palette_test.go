package palette_test

import (
	"testing"

	"github.com/serroba/web-toolbox/internal/tools/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Run("accepts supported notations", func(t *testing.T) {
		cases := map[string]palette.HSL{
			"#ff0000":            {H: 0, S: 100, L: 50},
			"#F00":               {H: 0, S: 100, L: 50},
			"  #0000ff ":         {H: 240, S: 100, L: 50},
			"rgb(0, 255, 0)":     {H: 120, S: 100, L: 50},
			"rgb(255,255,255)":   {H: 0, S: 0, L: 100},
			"hsl(200, 50%, 40%)": {H: 200, S: 50, L: 40},
			"hsl(360, 100%, 0%)": {H: 0, S: 100, L: 0},
		}

		for input, want := range cases {
			got, err := palette.ParseColor(input)
			require.NoError(t, err, input)
			assert.InDelta(t, want.H, got.H, 0.01, input)
			assert.InDelta(t, want.S, got.S, 0.01, input)
			assert.InDelta(t, want.L, got.L, 0.01, input)
		}
	})

	t.Run("rejects malformed colors", func(t *testing.T) {
		for _, input := range []string{"red", "#ff00", "#gggggg", "#ff0000ff", "rgb(256, 0, 0)", "rgb(1,2)", "hsl(10, 200%, 50%)", "cmyk(0,0,0,0)"} {
			_, err := palette.ParseColor(input)
			assert.ErrorIs(t, err, palette.ErrInvalidColor, input)
		}
	})

	t.Run("requires a color", func(t *testing.T) {
		_, err := palette.ParseColor(" ")

		assert.ErrorIs(t, err, palette.ErrColorRequired)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("complementary pairs the base with its opposite", func(t *testing.T) {
		p, err := palette.Generate("#ff0000", palette.Complementary, 0)
		require.NoError(t, err)

		require.Len(t, p.Colors, 2)
		assert.Equal(t, "#ff0000", p.Colors[0].Hex)
		assert.Equal(t, "#00ffff", p.Colors[1].Hex)
		assert.Equal(t, palette.RGB{R: 0, G: 255, B: 255}, p.Colors[1].RGB)
		assert.Equal(t, "hsl(180, 100%, 50%)", p.Colors[1].CSS)
		assert.Equal(t, 1, p.Colors[0].ID)
		assert.Equal(t, 2, p.Colors[1].ID)
		assert.Equal(t, "#ff0000", p.Base.Hex)
		assert.Zero(t, p.Base.ID)
	})

	t.Run("fixed size schemes ignore count", func(t *testing.T) {
		triadic, err := palette.Generate("#ff0000", palette.Triadic, 9)
		require.NoError(t, err)
		assert.Len(t, triadic.Colors, 3)
		assert.Equal(t, "#00ff00", triadic.Colors[1].Hex)
		assert.Equal(t, "#0000ff", triadic.Colors[2].Hex)

		tetradic, err := palette.Generate("#ff0000", palette.Tetradic, 9)
		require.NoError(t, err)
		assert.Len(t, tetradic.Colors, 4)
		assert.InDelta(t, 270, tetradic.Colors[3].HSL.H, 0.01)
	})

	t.Run("analogous steps hue by 30 degrees", func(t *testing.T) {
		p, err := palette.Generate("hsl(350, 80%, 60%)", palette.Analogous, 4)
		require.NoError(t, err)

		require.Len(t, p.Colors, 4)
		assert.InDelta(t, 350, p.Colors[0].HSL.H, 0.01)
		assert.InDelta(t, 20, p.Colors[1].HSL.H, 0.01)
		assert.InDelta(t, 50, p.Colors[2].HSL.H, 0.01)
		assert.InDelta(t, 80, p.Colors[3].HSL.H, 0.01)
	})

	t.Run("monochromatic spreads lightness", func(t *testing.T) {
		p, err := palette.Generate("#3366cc", palette.Monochromatic, 5)
		require.NoError(t, err)

		require.Len(t, p.Colors, 5)

		for i, want := range []float64{10, 30, 50, 70, 90} {
			assert.InDelta(t, want, p.Colors[i].HSL.L, 0.01)
			assert.InDelta(t, p.Base.HSL.H, p.Colors[i].HSL.H, 0.01)
		}
	})

	t.Run("defaults to five colors", func(t *testing.T) {
		p, err := palette.Generate("#3366cc", palette.Analogous, 0)
		require.NoError(t, err)

		assert.Len(t, p.Colors, palette.DefaultCount)
	})

	t.Run("rejects count outside range", func(t *testing.T) {
		for _, count := range []int{1, 13, -3} {
			_, err := palette.Generate("#3366cc", palette.Analogous, count)
			assert.ErrorIs(t, err, palette.ErrInvalidCount)
		}
	})

	t.Run("propagates color errors", func(t *testing.T) {
		_, err := palette.Generate("nope", palette.Complementary, 0)

		assert.ErrorIs(t, err, palette.ErrInvalidColor)
	})
}

func TestParseScheme(t *testing.T) {
	assert.Equal(t, palette.Triadic, palette.ParseScheme("triadic"))
	assert.Equal(t, palette.Complementary, palette.ParseScheme("rainbow"))
	assert.Equal(t, palette.Complementary, palette.ParseScheme(""))
}
