package svgpath

import (
	"regexp"
	"strings"
)

var numberRe = regexp.MustCompile(`-?\d+\.\d+|-?\d+`)

// FormatNumbers rewrites every numeric literal in a path-data string
// to at most two decimal places in its shortest canonical decimal
// form: trailing zeros and bare decimal points are trimmed, negative
// zero becomes 0, and scientific notation is never produced. Command
// letters and separators pass through unchanged.
//
// Rounding is half away from zero, applied to the decimal literal
// itself rather than to its float64 value, so results do not depend
// on which side of a tie the nearest binary representation falls:
// 12.345 always becomes 12.35, and 12.355 becomes 12.36.
func FormatNumbers(d string) string {
	return numberRe.ReplaceAllStringFunc(d, formatNumber)
}

func formatNumber(tok string) string {
	neg := strings.HasPrefix(tok, "-")
	tok = strings.TrimPrefix(tok, "-")

	intPart, frac := tok, ""
	if j := strings.IndexByte(tok, '.'); j >= 0 {
		intPart, frac = tok[:j], tok[j+1:]
	}
	if len(frac) > 2 {
		up := frac[2] >= '5'
		frac = frac[:2]
		if up {
			intPart, frac = incrementDecimal(intPart, frac)
		}
	}
	frac = strings.TrimRight(frac, "0")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	out := intPart
	if frac != "" {
		out += "." + frac
	}
	if out == "0" {
		return "0"
	}
	if neg {
		out = "-" + out
	}
	return out
}

// incrementDecimal adds one unit in the last place of the fractional
// digits, carrying into the integer part when needed.
func incrementDecimal(intPart, frac string) (string, string) {
	digits := []byte(intPart + frac)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		return "1" + string(digits[:len(intPart)]), string(digits[len(intPart):])
	}
	return string(digits[:len(intPart)]), string(digits[len(intPart):])
}
