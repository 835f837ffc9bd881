package entities

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrNotEnoughCards = errors.New("not enough cards in deck")

type Deck struct {
	Cards []Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit, Value: rankValues[rank]})
		}
	}
	return &Deck{Cards: cards}
}

func (d *Deck) Shuffle() {
	// Create a new random source using current time as seed
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes and returns the top n cards from the deck. Unlike a casual
// draw it refuses to come up short: a deck with fewer than n cards left
// returns ErrNotEnoughCards and stays untouched.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards: %w", n, ErrNotEnoughCards)
	}
	if n > len(d.Cards) {
		return nil, fmt.Errorf("%d cards requested, %d left: %w", n, len(d.Cards), ErrNotEnoughCards)
	}
	cards := d.Cards[:n]
	d.Cards = d.Cards[n:]
	return cards, nil
}

// RandomSuit returns one of the four suits uniformly at random. The solver
// front end uses it because suits never affect solutions.
func RandomSuit() Suit {
	return suits[rand.Intn(len(suits))]
}
