package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetter(t *testing.T) {
	cases := []struct {
		input string
		want  rune
	}{
		{"a", 'a'},
		{"Z", 'Z'},
		{"ñ", 'ñ'},
		{"e\u0301", '\u00e9'}, // e + combining acute composes to one code point
		{"\u0958", '\u0958'}, // NFC would split these into two
		{"\u0344", '\u0344'},
		{"\uFFFD", '\uFFFD'},
		{"/", '/'},
		{".", '.'},
		{"字", '字'},
		{"😀", '😀'},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLetter(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLetterRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		length int
	}{
		{"empty", "", 0},
		{"two letters", "ab", 2},
		{"uncomposable combining mark", "q\u0301", 2},
		{"nul", "\x00", 1},
		{"invalid utf8", "\xff", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLetter(tc.input)
			require.ErrorIs(t, err, ErrInvalidLetter)

			var invalid *InvalidLetterError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.input, invalid.Input)
			assert.Equal(t, tc.length, invalid.Length)
			assert.Len(t, invalid.CodePoints, tc.length)
		})
	}
}

func TestNewWordCountsCodePoints(t *testing.T) {
	w, err := NewWord("mañana")
	require.NoError(t, err)
	assert.Equal(t, 6, w.Len())
	assert.Equal(t, "mañana", w.String())

	w, err = NewWord("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, 4, w.Len())

	w, err = NewWord("\u0958a")
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, "\u0958a", w.String())
}

func TestGuessMatchesSingletonInWord(t *testing.T) {
	letter, err := ParseLetter("\u0958")
	require.NoError(t, err)

	state := BuildPlayState(3, []rune{letter}, mustWord(t, "\u0958a"))
	assert.Empty(t, state.MissedGuesses())
	assert.True(t, state.IsRevealed('\u0958'))
}

func TestNewWordRejectsInvalid(t *testing.T) {
	_, err := NewWord("")
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = NewWord("a\x00b")
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = NewWord("\xff")
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestLetterStateMatches(t *testing.T) {
	empty := LetterState{}
	filled := FilledLetter('x')

	assert.False(t, empty.IsFilled())
	assert.False(t, empty.Matches('x'))
	assert.False(t, empty.Matches(0))
	assert.True(t, filled.Matches('x'))
	assert.False(t, filled.Matches('y'))
	assert.Equal(t, "", empty.String())
	assert.Equal(t, "x", filled.String())
}
