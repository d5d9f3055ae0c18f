package value

import "math"

// Color is an RGB triple of 8-bit channels. It has value semantics.
type Color struct {
	R, G, B uint8
}

// RGB constructs a Color.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// Blend averages each channel, rounding down; it is symmetric.
func (c Color) Blend(o Color) Color {
	return Color{
		R: uint8((uint16(c.R) + uint16(o.R)) / 2),
		G: uint8((uint16(c.G) + uint16(o.G)) / 2),
		B: uint8((uint16(c.B) + uint16(o.B)) / 2),
	}
}

// Mix linearly interpolates from c toward o by ratio, which is clamped to
// [0,1]. Channels are truncated, not rounded.
func (c Color) Mix(o Color, ratio float64) Color {
	ratio = clamp(ratio, 0, 1)
	inv := 1 - ratio
	lerp := func(a, b uint8) uint8 {
		return channel(float64(a)*inv + float64(b)*ratio)
	}
	return Color{lerp(c.R, o.R), lerp(c.G, o.G), lerp(c.B, o.B)}
}

// Add sums channels, saturating at 255.
func (c Color) Add(o Color) Color {
	return Color{satAdd(c.R, o.R), satAdd(c.G, o.G), satAdd(c.B, o.B)}
}

// Sub subtracts channels, flooring at 0.
func (c Color) Sub(o Color) Color {
	return Color{satSub(c.R, o.R), satSub(c.G, o.G), satSub(c.B, o.B)}
}

// Scale multiplies each channel by factor, clamping to [0,255] and then
// truncating.
func (c Color) Scale(factor float64) Color {
	scale := func(a uint8) uint8 {
		return channel(clamp(float64(a)*factor, 0, 255))
	}
	return Color{scale(c.R), scale(c.G), scale(c.B)}
}

func satAdd(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xff {
		return uint8(s)
	}
	return 0xff
}

func satSub(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return 0
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// channel truncates f into a channel; NaN becomes 0.
func channel(f float64) uint8 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
