package imgtoa

// Intensity collapses one pixel's 8-bit component samples into a
// normalized brightness in [0,1].
func Intensity(samples []uint8) float64 {
	v := 0.0
	for _, s := range samples {
		v += float64(s)
	}
	return v / (255.0 * float64(len(samples)))
}

// QuantizeIndex maps a normalized cell intensity to an index into a
// palette of paletteLen characters. With invert unset, intensity 0
// selects the last palette character and intensity 1 the first; invert
// flips the direction. The result is always in [0, paletteLen-1].
func QuantizeIndex(intensity float64, paletteLen int, invert bool) int {
	chars := paletteLen - 1
	pos := round(float64(chars) * intensity)
	if pos < 0 {
		pos = 0
	} else if pos > chars {
		pos = chars
	}
	if invert {
		return pos
	}
	return chars - pos
}
