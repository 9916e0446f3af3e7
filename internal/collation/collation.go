// Package collation orders team and difficulty names the way a Korean reader expects.
package collation

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	mu sync.Mutex
	ko = collate.New(language.Korean)
)

// Compare returns -1, 0 or 1. Strings the collator considers equal fall back
// to byte order so the result is a total order.
func Compare(a, b string) int {
	mu.Lock()
	c := ko.CompareString(a, b)
	mu.Unlock()
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }
