// Package wordlist loads the words that fall down the lane.
package wordlist

import (
	"bufio"
	_ "embed" // Default word list.
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns the built-in word list.
func Default() []string {
	words, err := parse(strings.NewReader(defaultWords))
	if err != nil {
		panic(fmt.Sprintf("wordlist: embedded list unreadable: %v", err))
	}
	return words
}

// LoadWords reads a word list file. Each non-empty line contributes its
// first field, so frequency lists ("word count") load as well; lines
// starting with '#' are comments. Words that cannot be typed in the lane are
// dropped, and a list with no playable word is an error.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	words = Apply(words, ASCIILetters)
	if len(words) == 0 {
		return nil, fmt.Errorf("word list has no playable words")
	}
	return words, nil
}

func parse(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		word := strings.ToLower(fields[0])
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
