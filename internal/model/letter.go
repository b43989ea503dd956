package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LetterState is one position of the masked word or one missed guess.
// A zero Letter means the position has not been revealed yet.
type LetterState struct {
	Letter rune
}

// FilledLetter returns a LetterState holding the given code point
func FilledLetter(r rune) LetterState {
	return LetterState{Letter: r}
}

// IsFilled returns true if the state holds a letter
func (l LetterState) IsFilled() bool {
	return l.Letter != 0
}

// Matches reports whether the state is filled with exactly the given letter.
// An empty state never matches.
func (l LetterState) Matches(r rune) bool {
	return l.IsFilled() && l.Letter == r
}

// String returns the letter, or an empty string for an empty state
func (l LetterState) String() string {
	if !l.IsFilled() {
		return ""
	}
	return string(l.Letter)
}

// InvalidLetterError describes guessed text that is not exactly one code point
type InvalidLetterError struct {
	Input      string
	Length     int
	CodePoints []rune
}

func (e *InvalidLetterError) Error() string {
	return fmt.Sprintf("invalid letter %q: expected exactly one code point, got %d", e.Input, e.Length)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidLetter)
func (e *InvalidLetterError) Unwrap() error {
	return ErrInvalidLetter
}

// ParseLetter returns the single code point of guessed text. A combining
// sequence that composes (NFC) to one code point is accepted as that code
// point.
func ParseLetter(s string) (rune, error) {
	raw := []rune(s)
	if utf8.ValidString(s) {
		letter := []rune(compose(s))
		if len(letter) == 1 && letter[0] != 0 {
			return letter[0], nil
		}
	}
	return 0, &InvalidLetterError{
		Input:      s,
		Length:     len(raw),
		CodePoints: raw,
	}
}

// Word is a sequence of code points. Its length is the number of code
// points, not bytes.
type Word []rune

// NewWord composes s into a Word the same way ParseLetter composes guesses
func NewWord(s string) (Word, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidWord)
	}
	w := Word(compose(s))
	if len(w) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	for _, r := range w {
		if r == 0 {
			return nil, fmt.Errorf("%w: contains NUL", ErrInvalidWord)
		}
	}
	return w, nil
}

// compose applies NFC one normalization segment at a time and keeps a
// segment as written when NFC would lengthen it. Singletons such as U+0958
// decompose under NFC; they stay one code point here.
func compose(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		n := norm.NFC.NextBoundaryInString(s, true)
		if n <= 0 {
			n = len(s)
		}
		seg := s[:n]
		if nfc := norm.NFC.String(seg); utf8.RuneCountInString(nfc) <= utf8.RuneCountInString(seg) {
			seg = nfc
		}
		b.WriteString(seg)
		s = s[n:]
	}
	return b.String()
}

// Len returns the number of code points
func (w Word) Len() int {
	return len(w)
}

func (w Word) String() string {
	return string(w)
}

// positions maps each code point to every index it occupies, in order
func (w Word) positions() map[rune][]int {
	index := make(map[rune][]int, len(w))
	for i, r := range w {
		index[r] = append(index[r], i)
	}
	return index
}
