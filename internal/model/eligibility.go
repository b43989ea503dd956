package model

// IneligibleReason explains why a guess would not be accepted.
// The zero value, Eligible, means the guess may be played.
type IneligibleReason int

const (
	Eligible IneligibleReason = iota
	ReasonRepeat
	ReasonTooManyWrongGuesses
	ReasonAlreadyWon
)

// String returns the wire name of the reason
func (r IneligibleReason) String() string {
	switch r {
	case ReasonRepeat:
		return "REPEAT"
	case ReasonTooManyWrongGuesses:
		return "TOO_MANY_WRONG_GUESSES"
	case ReasonAlreadyWon:
		return "ALREADY_WON"
	default:
		return ""
	}
}

// IsEligible returns true if the guess may be played
func (r IneligibleReason) IsEligible() bool {
	return r == Eligible
}

// Err returns the error for reasons that reject the guess.
// Eligible and ReasonRepeat return nil: a repeated guess is not an error.
func (r IneligibleReason) Err() error {
	switch r {
	case ReasonTooManyWrongGuesses:
		return ErrTooManyWrongGuesses
	case ReasonAlreadyWon:
		return ErrAlreadyWon
	default:
		return nil
	}
}

// IneligibleReason classifies a proposed guess against this state.
// Repeats are checked before the terminal states so that re-guessing a
// letter stays idempotent after the game has ended.
func (p PlayState) IneligibleReason(letter rune) IneligibleReason {
	switch {
	case p.HasGuessed(letter):
		return ReasonRepeat
	case p.IsLost():
		return ReasonTooManyWrongGuesses
	case p.IsWon():
		return ReasonAlreadyWon
	default:
		return Eligible
	}
}
