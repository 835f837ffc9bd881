package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "h"
	Clubs    Suit = "c"
	Diamonds Suit = "d"
	Spades   Suit = "s"
)

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// rankValues maps each rank to its game value: ace counts one, face cards
// count ten, everything else counts its face value.
var rankValues = map[Rank]int{
	Ace:   1,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  10,
	Queen: 10,
	King:  10,
}

var suits = []Suit{Hearts, Clubs, Diamonds, Spades}

var ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card. Value is derived from Rank at construction
// and is never recomputed, so two cards are equal exactly when rank and suit
// match. Card is comparable and can be used as a map key.
type Card struct {
	Rank  Rank
	Suit  Suit
	Value int
}

// NewCard creates a new card, validating rank and suit against the
// recognized sets.
func NewCard(rank Rank, suit Suit) (Card, error) {
	value, ok := rankValues[rank]
	if !ok {
		return Card{}, fmt.Errorf("%q is not a recognized rank: %w", rank, ErrInvalidRank)
	}
	if !validSuit(suit) {
		return Card{}, fmt.Errorf("%q is not a recognized suit: %w", suit, ErrInvalidSuit)
	}
	return Card{Rank: rank, Suit: suit, Value: value}, nil
}

// String returns the short display form of the card, rank then suit ("8h").
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// ParseRank validates a bare rank token, normalizing case so "k" and "K"
// both parse. Suits are never user input, so there is no suit counterpart.
func ParseRank(s string) (Rank, error) {
	rank := Rank(strings.ToUpper(s))
	if _, ok := rankValues[rank]; !ok {
		return "", fmt.Errorf("%q is not a recognized rank: %w", s, ErrInvalidRank)
	}
	return rank, nil
}

func validSuit(suit Suit) bool {
	for _, s := range suits {
		if s == suit {
			return true
		}
	}
	return false
}
