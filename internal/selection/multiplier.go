package selection

import (
	"math"
)

// Display converts screen pixels to domain coordinates.
type Display interface {
	PixelToDomain(px, py int) (x, y float64)
}

// sampleDistance is the pixel span sampled by Multiplier.
const sampleDistance = 1000

// Multiplier returns the number of domain units per screen pixel, measured
// from two samples a fixed distance apart. It falls back to 1 when no display
// is available or the samples give no usable ratio.
func Multiplier(d Display) float32 {
	if d == nil {
		return 1
	}
	x1, y1 := d.PixelToDomain(0, 0)
	x2, y2 := d.PixelToDomain(0, sampleDistance)
	mult := float32(math.Hypot(x2-x1, y2-y1) / sampleDistance)
	if mult != mult {
		return 1
	}
	return mult
}

// ScaledDisplay is a Display with a uniform zoom and pan.
type ScaledDisplay struct {
	Scale  float64 // Domain units per pixel
	ShiftX float64
	ShiftY float64
}

func (s ScaledDisplay) PixelToDomain(px, py int) (float64, float64) {
	return s.ShiftX + s.Scale*float64(px), s.ShiftY + s.Scale*float64(py)
}
