package engine

import "github.com/verte-zerg/typefall/internal/model"

// lane is the ordered set of falling letters. Insertion order is spawn
// order. Every mutation builds a new slice from the previous one.
type lane struct {
	letters []model.Letter
}

func (l *lane) add(letter model.Letter) {
	next := make([]model.Letter, len(l.letters), len(l.letters)+1)
	copy(next, l.letters)
	l.letters = append(next, letter)
}

func (l *lane) clear() {
	l.letters = nil
}

func (l *lane) len() int {
	return len(l.letters)
}

// active returns the index of the letter with the largest Top, the earliest
// spawned one on ties, or -1 for an empty lane.
func (l *lane) active() int {
	best := -1
	for i, letter := range l.letters {
		if best < 0 || letter.Top > l.letters[best].Top {
			best = i
		}
	}
	return best
}

func (l *lane) filter(keep func(model.Letter) bool) int {
	next := make([]model.Letter, 0, len(l.letters))
	for _, letter := range l.letters {
		if keep(letter) {
			next = append(next, letter)
		}
	}
	removed := len(l.letters) - len(next)
	l.letters = next
	return removed
}

func (l *lane) remove(id uint64) bool {
	return l.filter(func(letter model.Letter) bool { return letter.ID != id }) > 0
}

func (l *lane) removeWord(wordIndex int) int {
	return l.filter(func(letter model.Letter) bool { return letter.WordIndex != wordIndex })
}

// advance moves every letter down by step and reports whether any letter
// reached limit.
func (l *lane) advance(step, limit float64) bool {
	next := make([]model.Letter, len(l.letters))
	breach := false
	for i, letter := range l.letters {
		letter.Top += step
		if letter.Top >= limit {
			breach = true
		}
		next[i] = letter
	}
	l.letters = next
	return breach
}

func (l *lane) views() []LetterView {
	active := l.active()
	out := make([]LetterView, len(l.letters))
	for i, letter := range l.letters {
		out[i] = LetterView{Letter: letter, Active: i == active}
	}
	return out
}
