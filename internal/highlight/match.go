package highlight

import "unicode"

// Range is a half-open span [Start, End) of rune offsets into a display name.
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes covered by r.
func (r Range) Len() int { return r.End - r.Start }

// FindMatches returns every non-overlapping, case-insensitive occurrence of
// query in text, leftmost first. Offsets are in runes. The query is literal
// text; no character has special meaning. An empty query matches nothing.
func FindMatches(query, text string) []Range {
	q := foldRunes(query)
	if len(q) == 0 {
		return nil
	}
	t := foldRunes(text)

	var ranges []Range
	for i := 0; i+len(q) <= len(t); {
		if hasPrefixAt(t, q, i) {
			ranges = append(ranges, Range{Start: i, End: i + len(q)})
			i += len(q)
			continue
		}
		i++
	}
	return ranges
}

// Contains reports whether query occurs in text under the same rules as
// FindMatches.
func Contains(query, text string) bool {
	return len(FindMatches(query, text)) > 0
}

func hasPrefixAt(t, q []rune, at int) bool {
	for j := range q {
		if t[at+j] != q[j] {
			return false
		}
	}
	return true
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = foldRune(r)
	}
	return rs
}

// foldRune maps r to the smallest rune in its Unicode simple case folding
// orbit. Simple folding is one rune to one rune and does not depend on locale,
// so folded offsets line up with offsets into the original string.
func foldRune(r rune) rune {
	min := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < min {
			min = f
		}
	}
	return min
}
