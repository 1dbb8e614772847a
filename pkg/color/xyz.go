package color

import "github.com/chewxy/math32"

// XYZ is a CIE 1931 tristimulus value.
type XYZ struct {
	X, Y, Z float32
}

// Add returns the componentwise sum of two XYZ values.
func (c XYZ) Add(other XYZ) XYZ {
	return XYZ{c.X + other.X, c.Y + other.Y, c.Z + other.Z}
}

// Scale returns c with every component multiplied by k.
func (c XYZ) Scale(k float32) XYZ {
	return XYZ{c.X * k, c.Y * k, c.Z * k}
}

// ToLinearRGB converts a CIE XYZ value to linear sRGB primaries using the
// standard sRGB/D65 XYZ-to-RGB matrix. Values are not gamut-clamped;
// callers that need display-safe output should clamp after conversion.
func (c XYZ) ToLinearRGB() (r, g, b float32) {
	r = 3.2406*c.X - 1.5372*c.Y - 0.4986*c.Z
	g = -0.9689*c.X + 1.8758*c.Y + 0.0415*c.Z
	b = 0.0557*c.X - 0.2040*c.Y + 1.0570*c.Z
	return
}

// FromWavelength returns the CIE 1931 2-degree observer XYZ matching
// function value at wl (nm), using the Wyman, Sochacki & Blinn analytic
// Gaussian-sum approximation. X/Y/Z are each non-negative over
// [380,780]nm.
func FromWavelength(wl float32) XYZ {
	t1x := math32.Log((wl + 570.1) / 1014.0)
	t2x := math32.Log((1338.0 - wl) / 743.5)
	x := 0.398*math32.Exp(-1250*t1x*t1x) + 1.132*math32.Exp(-234*t2x*t2x)

	ty := (wl - 556.1) / 46.14
	y := 1.011 * math32.Exp(-0.5*ty*ty)

	tz := math32.Log((wl - 265.8) / 180.4)
	z := 2.060 * math32.Exp(-32*tz*tz)

	return XYZ{X: x, Y: y, Z: z}
}
