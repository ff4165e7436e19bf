// Package palette derives color harmonies from a base color.
package palette

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultCount = 5
	MinCount     = 2
	MaxCount     = 12
)

var (
	ErrColorRequired = errors.New("base color is required")
	ErrInvalidColor  = errors.New("invalid color format")
	ErrInvalidCount  = fmt.Errorf("count must be between %d and %d", MinCount, MaxCount)
)

var (
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
)

type Scheme string

const (
	Complementary Scheme = "complementary"
	Analogous     Scheme = "analogous"
	Triadic       Scheme = "triadic"
	Monochromatic Scheme = "monochromatic"
	Tetradic      Scheme = "tetradic"
)

// ParseScheme returns the named scheme, falling back to Complementary.
func ParseScheme(name string) Scheme {
	switch s := Scheme(name); s {
	case Analogous, Triadic, Monochromatic, Tetradic:
		return s
	default:
		return Complementary
	}
}

// HSL holds hue in degrees and saturation and lightness in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type Color struct {
	ID  int    `json:"id,omitempty"`
	HSL HSL    `json:"hsl"`
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	CSS string `json:"css"`
}

type Palette struct {
	Base   Color
	Colors []Color
	Scheme Scheme
}

// Generate builds the palette for base using scheme. A zero count means DefaultCount;
// count only changes the size of analogous and monochromatic palettes.
func Generate(base string, scheme Scheme, count int) (*Palette, error) {
	if count == 0 {
		count = DefaultCount
	}

	if count < MinCount || count > MaxCount {
		return nil, ErrInvalidCount
	}

	hsl, err := ParseColor(base)
	if err != nil {
		return nil, err
	}

	var shades []HSL

	switch scheme {
	case Analogous:
		shades = analogous(hsl, count)
	case Triadic:
		shades = rotations(hsl, 120, 240)
	case Monochromatic:
		shades = monochromatic(hsl, count)
	case Tetradic:
		shades = rotations(hsl, 90, 180, 270)
	default:
		scheme = Complementary
		shades = rotations(hsl, 180)
	}

	colors := make([]Color, len(shades))
	for i, shade := range shades {
		colors[i] = toColor(shade)
		colors[i].ID = i + 1
	}

	return &Palette{
		Base:   toColor(hsl),
		Colors: colors,
		Scheme: scheme,
	}, nil
}

// ParseColor accepts #rrggbb, #rgb, rgb(r, g, b) and hsl(h, s%, l%).
func ParseColor(raw string) (HSL, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return HSL{}, ErrColorRequired
	}

	switch {
	case strings.HasPrefix(value, "#"):
		if len(value) != 4 && len(value) != 7 {
			return HSL{}, ErrInvalidColor
		}

		c, err := colorful.Hex(value)
		if err != nil {
			return HSL{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
		}

		return fromColorful(c), nil
	case strings.HasPrefix(value, "rgb"):
		parts, err := components(rgbPattern, value, 255, 255, 255)
		if err != nil {
			return HSL{}, err
		}

		return fromColorful(colorful.Color{R: parts[0] / 255, G: parts[1] / 255, B: parts[2] / 255}), nil
	case strings.HasPrefix(value, "hsl"):
		parts, err := components(hslPattern, value, 360, 100, 100)
		if err != nil {
			return HSL{}, err
		}

		return HSL{H: math.Mod(parts[0], 360), S: parts[1], L: parts[2]}, nil
	}

	return HSL{}, ErrInvalidColor
}

func components(pattern *regexp.Regexp, value string, limits ...float64) ([]float64, error) {
	match := pattern.FindStringSubmatch(value)
	if match == nil {
		return nil, ErrInvalidColor
	}

	out := make([]float64, len(limits))

	for i, limit := range limits {
		n, err := strconv.Atoi(match[i+1])
		if err != nil || float64(n) > limit {
			return nil, ErrInvalidColor
		}

		out[i] = float64(n)
	}

	return out, nil
}

func fromColorful(c colorful.Color) HSL {
	h, s, l := c.Hsl()

	return HSL{H: h, S: s * 100, L: l * 100}
}

func toColor(hsl HSL) Color {
	c := colorful.Hsl(hsl.H, hsl.S/100, hsl.L/100).Clamped()
	r, g, b := c.RGB255()

	return Color{
		HSL: hsl,
		Hex: c.Hex(),
		RGB: RGB{R: r, G: g, B: b},
		CSS: fmt.Sprintf("hsl(%d, %d%%, %d%%)", round(hsl.H), round(hsl.S), round(hsl.L)),
	}
}

func rotations(base HSL, degrees ...float64) []HSL {
	shades := []HSL{base}
	for _, d := range degrees {
		shades = append(shades, HSL{H: math.Mod(base.H+d, 360), S: base.S, L: base.L})
	}

	return shades
}

func analogous(base HSL, count int) []HSL {
	shades := []HSL{base}
	for i := 1; i < count; i++ {
		shades = append(shades, HSL{H: math.Mod(base.H+float64(i*30), 360), S: base.S, L: base.L})
	}

	return shades
}

// monochromatic spreads lightness evenly from 10% to 90%.
func monochromatic(base HSL, count int) []HSL {
	step := 80 / float64(count-1)

	shades := make([]HSL, count)
	for i := range shades {
		shades[i] = HSL{H: base.H, S: base.S, L: 10 + float64(i)*step}
	}

	return shades
}

func round(f float64) int {
	return int(math.Round(f))
}
