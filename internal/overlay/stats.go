package overlay

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Statistic names reported by the overlay variants.
const (
	StatCoordinates   = "Coordinates"
	StatLength        = "Length"
	StatTip           = "Tip Coordinates"
	StatAngle         = "Angle"
	StatCenter        = "Center"
	StatWidth         = "Width"
	StatHeight        = "Height"
	StatArea          = "Area"
	StatPerimeter     = "Perimeter"
	StatRadius        = "Radius"
	StatMajorAxis     = "Major Axis Length"
	StatMinorAxis     = "Minor Axis Length"
	StatEccentricity  = "Eccentricity"
	StatCircumference = "Circumference (approximate)"
	StatBounds        = "Bounds"
	StatNodeCount     = "Number of Nodes"
)

// NoSuchStat is returned by Stat for names the variant does not report.
const NoSuchStat = "No such statistic for this overlay type"

// StatTypes returns the statistic names a kind reports, in display order.
func StatTypes(k Kind) []string {
	switch k {
	case KindLine:
		return []string{StatCoordinates, StatLength}
	case KindArrow:
		return []string{StatTip, StatAngle, StatLength}
	case KindBox:
		return []string{StatCoordinates, StatCenter, StatWidth, StatHeight, StatArea, StatPerimeter}
	case KindOval:
		return []string{StatCoordinates, StatCenter, StatRadius, StatMajorAxis, StatMinorAxis,
			StatArea, StatEccentricity, StatCircumference}
	case KindMarker, KindText:
		return []string{StatCoordinates}
	case KindFreeform, KindPolyline:
		return []string{StatBounds, StatNodeCount, StatLength}
	}
	return nil
}

// formatFloat renders a float32 with the shortest round-trip digits and at
// least one fractional digit ("5.0"). Magnitudes outside [1e-3, 1e7) use
// E notation ("1.0E7").
func formatFloat(f float32) string {
	switch {
	case math32.IsNaN(f):
		return "NaN"
	case math32.IsInf(f, 1):
		return "Infinity"
	case math32.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math32.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(float64(f), 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(float64(f), 'E', -1, 32)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}

func formatPoint(x, y float32) string {
	return "(" + formatFloat(x) + ", " + formatFloat(y) + ")"
}

func formatSpan(x1, y1, x2, y2 float32) string {
	return formatPoint(x1, y1) + "-" + formatPoint(x2, y2)
}
