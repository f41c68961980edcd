package game

import (
	"fmt"
	"strings"
)

type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks in deck construction order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits in deck construction order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

var suitLetters = map[Suit]string{
	Spades:   "S",
	Hearts:   "H",
	Diamonds: "D",
	Clubs:    "C",
}

// Symbol returns the unicode suit glyph used for display.
func (s Suit) Symbol() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	}
	return "unknown"
}

func (s Suit) Valid() bool {
	return s <= Clubs
}

// Card is an immutable rank and suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String renders the card as rank followed by suit symbol, e.g. "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCard accepts the display form ("A♠", "10♥") or ASCII suit letters ("QD", "7c").
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty token", ErrInvalidCard)
	}

	var suit Suit
	var rankPart string
	found := false
	for st, sym := range suitSymbols {
		if strings.HasSuffix(s, sym) {
			suit, rankPart, found = st, strings.TrimSuffix(s, sym), true
			break
		}
	}
	if !found {
		last := strings.ToUpper(s[len(s)-1:])
		for st, letter := range suitLetters {
			if last == letter {
				suit, rankPart, found = st, s[:len(s)-1], true
				break
			}
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	rankPart = strings.ToUpper(rankPart)
	if rankPart == "T" {
		rankPart = "10"
	}
	for r, name := range rankNames {
		if name == rankPart {
			return NewCard(r, suit), nil
		}
	}
	return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
