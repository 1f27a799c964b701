package document

// Format renders raw with the canonical mask for kind:
// 000.000.000-00 for individuals and 00.000.000/0000-00 for organizations.
// It returns false when raw does not hold exactly kind.Length() digits.
// Format does not verify check digits.
func Format(raw string, kind Kind) (string, bool) {
	d := Normalize(raw)
	if len(d) != kind.Length() {
		return "", false
	}
	if kind == Organization {
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14], true
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], true
}

// Mask hides all but the last two digits of raw, for logging.
func Mask(raw string) string {
	d := Normalize(raw)
	if len(d) <= 2 {
		return "**"
	}
	masked := make([]byte, len(d))
	for i := range masked[:len(d)-2] {
		masked[i] = '*'
	}
	copy(masked[len(d)-2:], d[len(d)-2:])
	return string(masked)
}
