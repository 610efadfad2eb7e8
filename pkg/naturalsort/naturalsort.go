// Package naturalsort implements natural-order string comparison: runs of
// digits compare numerically, everything else compares case-insensitively.
// "item2" sorts before "item10".
package naturalsort

import (
	"sort"
	"strings"
	"unicode"
)

// Compare returns -1, 0 or 1 ordering a and b naturally.
func Compare(a, b string) int {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if unicode.IsDigit(ar[i]) && unicode.IsDigit(br[j]) {
			// Compare the full digit runs numerically.
			ai, an := digitRun(ar, i)
			bj, bn := digitRun(br, j)
			if c := compareNumeric(an, bn); c != 0 {
				return c
			}
			i, j = ai, bj
			continue
		}
		if ar[i] != br[j] {
			if ar[i] < br[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(ar):
		return 1
	case j < len(br):
		return -1
	default:
		return 0
	}
}

// Less reports whether a orders before b naturally.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Strings sorts the slice in natural order, in place.
func Strings(s []string) {
	sort.Slice(s, func(i, j int) bool { return Less(s[i], s[j]) })
}

// digitRun returns the index past the digit run starting at i and the run
// itself with leading zeros stripped.
func digitRun(r []rune, i int) (int, string) {
	start := i
	for i < len(r) && unicode.IsDigit(r[i]) {
		i++
	}
	run := strings.TrimLeft(string(r[start:i]), "0")
	if run == "" {
		run = "0"
	}
	return i, run
}

// compareNumeric compares two digit strings without leading zeros.
func compareNumeric(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
