package model

// PlayState is the visible state of a game, derived from the secret word and
// the guesses recorded so far. It is never modified after construction; a new
// guess produces a new PlayState.
type PlayState struct {
	remainingWrongGuesses int
	maskedWord            []LetterState
	missedGuesses         []LetterState
}

// BuildPlayState derives the visible state from the ordered guesses.
//
// Repeated guesses are dropped, keeping the first occurrence. Once the number
// of distinct misses reaches maxWrongGuesses no further guesses are applied,
// so a log holding more guesses than the limit allowed still yields the state
// at the moment the game was lost.
func BuildPlayState(maxWrongGuesses int, guesses []rune, word Word) PlayState {
	positions := word.positions()

	masked := make([]LetterState, len(word))
	missed := make([]LetterState, 0)

	seen := make(map[rune]struct{}, len(guesses))
	for _, guess := range guesses {
		if _, ok := seen[guess]; ok {
			continue
		}
		seen[guess] = struct{}{}

		if len(missed) >= maxWrongGuesses {
			break
		}

		if idxs, ok := positions[guess]; ok {
			for _, i := range idxs {
				masked[i] = FilledLetter(guess)
			}
		} else {
			missed = append(missed, FilledLetter(guess))
		}
	}

	return PlayState{
		remainingWrongGuesses: maxWrongGuesses - len(missed),
		maskedWord:            masked,
		missedGuesses:         missed,
	}
}

// RemainingWrongGuesses returns how many more misses are allowed.
// Zero or less means the game is lost.
func (p PlayState) RemainingWrongGuesses() int {
	return p.remainingWrongGuesses
}

// MaskedWord returns a copy of the masked word
func (p PlayState) MaskedWord() []LetterState {
	out := make([]LetterState, len(p.maskedWord))
	copy(out, p.maskedWord)
	return out
}

// MissedGuesses returns a copy of the missed guesses in the order they were missed
func (p PlayState) MissedGuesses() []LetterState {
	out := make([]LetterState, len(p.missedGuesses))
	copy(out, p.missedGuesses)
	return out
}

// HasGuessed returns true if the letter is revealed in the word or was missed
func (p PlayState) HasGuessed(r rune) bool {
	return containsLetter(p.maskedWord, r) || containsLetter(p.missedGuesses, r)
}

// IsRevealed returns true if the letter has been filled into the masked word
func (p PlayState) IsRevealed(r rune) bool {
	return containsLetter(p.maskedWord, r)
}

// IsMissed returns true if the letter is in the missed guesses
func (p PlayState) IsMissed(r rune) bool {
	return containsLetter(p.missedGuesses, r)
}

// IsLost returns true once no wrong guesses remain
func (p PlayState) IsLost() bool {
	return p.remainingWrongGuesses < 1
}

// IsWon returns true once every position of the word is revealed
func (p PlayState) IsWon() bool {
	for _, l := range p.maskedWord {
		if !l.IsFilled() {
			return false
		}
	}
	return true
}

// Equal reports whether two play states are identical
func (p PlayState) Equal(other PlayState) bool {
	if p.remainingWrongGuesses != other.remainingWrongGuesses {
		return false
	}
	return equalLetters(p.maskedWord, other.maskedWord) && equalLetters(p.missedGuesses, other.missedGuesses)
}

func containsLetter(letters []LetterState, r rune) bool {
	for _, l := range letters {
		if l.Matches(r) {
			return true
		}
	}
	return false
}

func equalLetters(a, b []LetterState) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
