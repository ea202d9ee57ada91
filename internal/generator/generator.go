// Package generator picks the words that fall down the lane.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Generator selects words uniformly from a word list.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator drawing from rnd.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Next picks a word and returns it upper-cased together with the horizontal
// cursor to spawn it at. When the word would overflow laneWidth starting at
// cursor, the cursor wraps to the lane's left edge. An empty list yields "".
func (g *Generator) Next(words []string, laneWidth, letterSpacing, cursor float64) (string, float64) {
	if len(words) == 0 {
		return "", cursor
	}
	word := strings.ToUpper(words[g.rnd.Intn(len(words))])
	return word, Place(len(word), laneWidth, letterSpacing, cursor)
}

// Place returns the cursor a word of n letters starts at.
func Place(n int, laneWidth, letterSpacing, cursor float64) float64 {
	if cursor < 0 || cursor+float64(n)*letterSpacing > laneWidth {
		return 0
	}
	return cursor
}
