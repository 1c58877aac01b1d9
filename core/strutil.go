package core

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Add space for negative sign
	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// ftoa formats f with a fixed number of decimals, rounding half away from zero.
// Avoids strconv/fmt on target.
func ftoa(f float32, decimals int) string {
	scale := 1
	for i := 0; i < decimals; i++ {
		scale *= 10
	}

	negative := f < 0
	if negative {
		f = -f
	}
	scaled := int(f*float32(scale) + 0.5)

	s := itoa(scaled / scale)
	if decimals > 0 {
		frac := itoa(scaled % scale)
		for len(frac) < decimals {
			frac = "0" + frac
		}
		s += "." + frac
	}
	if negative && scaled != 0 {
		s = "-" + s
	}
	return s
}
