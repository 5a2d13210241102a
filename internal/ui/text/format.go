package text

import "fmt"

// Count formats n with a singular or plural noun: "1 item", "3 items".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Quote wraps a user query for display, eliding the middle of long ones.
func Quote(q string, maxWidth int) string {
	r := []rune(q)
	if maxWidth > 3 && len(r) > maxWidth-2 {
		keep := maxWidth - 3
		head := keep / 2
		tail := keep - head
		q = string(r[:head]) + "…" + string(r[len(r)-tail:])
	}
	return fmt.Sprintf("%q", q)
}
