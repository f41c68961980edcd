package game

import "errors"

var (
	ErrDeckExhausted   = errors.New("deck exhausted")
	ErrInvalidCard     = errors.New("invalid card")
	ErrOutOfSequence   = errors.New("call out of sequence")
	ErrSessionNotFound = errors.New("session not found")
)
