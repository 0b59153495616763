package trace

import "image/color"

// Luminance returns the Rec. 709 relative luminance of c on a 0–255 scale.
func Luminance(c color.NRGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// ClampThreshold clamps a darkness threshold into [0, 255].
func ClampThreshold(threshold int) int {
	if threshold < 0 {
		return 0
	}
	if threshold > 255 {
		return 255
	}
	return threshold
}

// Classifier decides which reference pixels belong to the traceable outline.
type Classifier struct {
	// Threshold is the maximum luminance of an outline pixel (0–255).
	Threshold int
}

// IsVisible reports whether c is not fully transparent.
func (Classifier) IsVisible(c color.NRGBA) bool {
	return c.A > 0
}

// IsOutline reports whether c is a visible pixel at least as dark as the threshold.
func (cl Classifier) IsOutline(c color.NRGBA) bool {
	if c.A == 0 {
		return false
	}
	return Luminance(c) <= float64(cl.Threshold)
}
