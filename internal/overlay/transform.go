package overlay

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Transform supplies the display properties overlays need to size
// themselves: the image extent in domain units and the label font.
type Transform interface {
	// ScalingValueX returns the image width in domain units.
	ScalingValueX() int

	// ScalingValueY returns the image height in domain units.
	ScalingValueY() int

	// FontFace returns the face used to measure text labels.
	FontFace() font.Face
}

// ScalingValue returns the smaller of the two scaling values, suitable for
// sizing markers and selection padding.
func ScalingValue(t Transform) int {
	x, y := t.ScalingValueX(), t.ScalingValueY()
	if x < y {
		return x
	}
	return y
}

// ImageTransform is a Transform backed by a fixed image size.
type ImageTransform struct {
	Width  int
	Height int
	Face   font.Face
}

// NewImageTransform creates a transform for an image of the given size
// using the built-in 7x13 bitmap face.
func NewImageTransform(width, height int) *ImageTransform {
	return &ImageTransform{Width: width, Height: height}
}

// DefaultTransform returns the transform used when a shape is built
// without one.
func DefaultTransform() *ImageTransform {
	return NewImageTransform(512, 512)
}

func (t *ImageTransform) ScalingValueX() int { return t.Width }
func (t *ImageTransform) ScalingValueY() int { return t.Height }

func (t *ImageTransform) FontFace() font.Face {
	if t.Face == nil {
		return basicfont.Face7x13
	}
	return t.Face
}
