package unitext

// greekAccented maps the polytonic Greek accented uppercase letters to their
// lowercase counterparts. The basic Greek block (0391-03A9) folds by a fixed
// offset below; the accented letters sit outside that contiguous range and
// need an explicit table.
var greekAccented = map[rune]rune{
	0x0386: 0x03AC, // Ά -> ά
	0x0388: 0x03AD, // Έ -> έ
	0x0389: 0x03AE, // Ή -> ή
	0x038A: 0x03AF, // Ί -> ί
	0x038C: 0x03CC, // Ό -> ό
	0x038E: 0x03CD, // Ύ -> ύ
	0x038F: 0x03CE, // Ώ -> ώ
	0x03AA: 0x03CA, // Ϊ -> ϊ
	0x03AB: 0x03CB, // Ϋ -> ϋ
}

// foldRune applies the finite case-folding table. Only the code points
// enumerated here fold; everything else is returned unchanged. This is
// intentionally not full Unicode case folding.
func foldRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + 0x20
	case r >= 0x00C0 && r <= 0x00DE && r != 0x00D7:
		return r + 0x20
	case r >= 0x0391 && r <= 0x03A9:
		return r + 0x20
	case r >= 0x0410 && r <= 0x042F:
		return r + 0x20
	case r == 0x03C2:
		return 0x03C3
	}
	if folded, ok := greekAccented[r]; ok {
		return folded
	}
	return r
}

// isASCII reports whether r is in the ASCII range.
func isASCII(r rune) bool {
	return r < 0x80
}

// runeEqual compares two code points under the given case-sensitivity mode.
func runeEqual(a, b rune, insensitive bool) bool {
	if !insensitive {
		return a == b
	}
	if isASCII(a) && isASCII(b) {
		return (a | 0x20) == (b | 0x20)
	}
	return foldRune(a) == foldRune(b)
}
