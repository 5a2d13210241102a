package highlight

// Style is the emphasis class of a run of characters in a rendered name.
type Style int

const (
	// StyleDefault is used for the whole name when the query is empty.
	StyleDefault Style = iota
	// StyleMuted is used outside matches when the query is non-empty.
	StyleMuted
	// StyleEmphasized is used inside matches.
	StyleEmphasized
)

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleMuted:
		return "muted"
	case StyleEmphasized:
		return "emphasized"
	default:
		return "unknown"
	}
}

// Segment is a contiguous run of a name rendered in one style.
type Segment struct {
	Text  string
	Style Style
}

// Segments splits text into styled runs for query. Concatenating the Text of
// every segment yields text exactly. An empty query gives one default
// segment; otherwise runs alternate between muted and emphasized.
func Segments(query, text string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text, Style: StyleDefault}}
	}

	rs := []rune(text)
	var segs []Segment
	pos := 0
	for _, m := range FindMatches(query, text) {
		if m.Start > pos {
			segs = append(segs, Segment{Text: string(rs[pos:m.Start]), Style: StyleMuted})
		}
		segs = append(segs, Segment{Text: string(rs[m.Start:m.End]), Style: StyleEmphasized})
		pos = m.End
	}
	if pos < len(rs) {
		segs = append(segs, Segment{Text: string(rs[pos:]), Style: StyleMuted})
	}
	return segs
}

// StyleAt returns the style of the rune at index i of text. Out-of-range
// indexes report the style the surrounding name would have outside a match.
func StyleAt(query, text string, i int) Style {
	if query == "" {
		return StyleDefault
	}
	for _, m := range FindMatches(query, text) {
		if i >= m.Start && i < m.End {
			return StyleEmphasized
		}
		if m.Start > i {
			break
		}
	}
	return StyleMuted
}
