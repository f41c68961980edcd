package game

import (
	"fmt"
	"math/rand"
)

const DeckSize = 52

// CreateDeck enumerates all 52 cards, rank-major then suit. No randomness.
func CreateDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			cards = append(cards, NewCard(r, s))
		}
	}
	return cards
}

// Deck is consumed front to back through a cursor; cards are never removed.
type Deck struct {
	cards  []Card
	cursor int
	rng    *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Shuffle()
	return d
}

// Shuffle restores the full deck in a uniformly random order and rewinds the cursor.
func (d *Deck) Shuffle() {
	d.cards = CreateDeck()
	d.cursor = 0
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, error) {
	if d.cursor >= len(d.cards) {
		return Card{}, fmt.Errorf("draw card %d: %w", d.cursor+1, ErrDeckExhausted)
	}

	card := d.cards[d.cursor]
	d.cursor++
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

func (d *Deck) Position() int {
	return d.cursor
}

// Cards returns a copy of the full ordered deck, including dealt cards.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
