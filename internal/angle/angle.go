// Package angle converts between degrees and radians.
package angle

import (
	"fmt"
	"math"
	"strconv"
)

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return (deg * math.Pi) / 180.0
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return (rad * 180.0) / math.Pi
}

// format prints v with six significant digits, the way a default-configured
// output stream does.
func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatConversions returns the two startup lines both programs print.
func FormatConversions() []string {
	return []string{
		fmt.Sprintf("360 degrees = %s radians.", format(DegreesToRadians(360.0))),
		fmt.Sprintf("1 radian = %s degrees.", format(RadiansToDegrees(1.0))),
	}
}
