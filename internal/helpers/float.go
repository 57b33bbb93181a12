package helpers

import (
	"math"
	"strconv"
)

// Formats a number the way JavaScript's "String(value)" does for the values a
// property key or a numeric literal can hold
func FloatToString(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		// "String(-0)" is "0"
		return "0"
	}

	if absValue := math.Abs(value); absValue >= 1e-6 && absValue < 1e21 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	text := strconv.FormatFloat(value, 'g', -1, 64)

	// Go pads the exponent to two digits ("1e-07") but JavaScript doesn't ("1e-7")
	for i := 0; i+2 < len(text); i++ {
		if text[i] == 'e' && text[i+2] == '0' && i+3 < len(text) {
			text = text[:i+2] + text[i+3:]
			break
		}
	}
	return text
}
