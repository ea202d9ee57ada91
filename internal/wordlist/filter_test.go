package wordlist

import "testing"

func TestASCIILetters(t *testing.T) {
	for _, word := range []string{"hello", "HELLO", "Mixed"} {
		if !ASCIILetters(word) {
			t.Fatalf("expected %q to pass", word)
		}
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "a1"} {
		if ASCIILetters(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestApplyFilters(t *testing.T) {
	words := []string{"cat", "giraffe", "co-op", "dog"}
	got := Apply(words, ASCIILetters, MaxLen(3))
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("unexpected filtered words: %v", got)
	}
	if all := Apply(words, MaxLen(0)); len(all) != len(words) {
		t.Fatalf("expected MaxLen(0) to keep everything, got %v", all)
	}
}
