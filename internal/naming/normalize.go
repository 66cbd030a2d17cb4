package naming

import "strings"

// Markers lists the release markers that truncate a name, in priority order.
// The parenthesized variants are kept even though bracket stripping removes
// every balanced "(...)" span before markers are considered.
var Markers = []string{
	" 720p ",
	" 1080p ",
	" BD ",
	" BDRip ",
	" WEBRip ",
	" 720 ",
	" 1080 ",
	" (720) ",
	" (1080) ",
}

var bracketPairs = [...][2]byte{
	{'[', ']'},
	{'{', '}'},
	{'(', ')'},
}

// Normalize returns the canonical comparison key for a raw folder name.
// It never fails; an empty name yields an empty key.
func Normalize(raw string) string {
	key := raw
	for _, pair := range bracketPairs {
		key = StripPairs(key, pair[0], pair[1])
	}
	for _, marker := range Markers {
		key = TruncateAt(key, marker)
	}
	return strings.TrimSpace(key)
}

// StripPairs repeatedly removes the span from the first opener through the
// first closer that follows it. The pass stops, leaving the remainder intact,
// once an opener has no closer after it.
func StripPairs(s string, open, close byte) string {
	for {
		start := strings.IndexByte(s, open)
		if start < 0 {
			return s
		}
		end := strings.IndexByte(s[start+1:], close)
		if end < 0 {
			return s
		}
		end += start + 1
		s = s[:start] + s[end+1:]
	}
}

// TruncateAt cuts s at the first occurrence of marker, discarding the marker
// and everything after it. s is returned unchanged when marker is absent.
func TruncateAt(s, marker string) string {
	if marker == "" {
		return s
	}
	if idx := strings.Index(s, marker); idx >= 0 {
		return s[:idx]
	}
	return s
}
