package game

import "errors"

// Failure kinds. All of them signal a broken game invariant: nothing here is
// retried, any occurrence aborts the running game instance.
var (
	ErrInvalidDeckSize = errors.New("deck does not contain exactly 48 cards")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrTrickLength     = errors.New("trick does not contain exactly 4 plays")
)
