package entities

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeck() {
	// Execute
	deck := NewDeck()

	// Assert
	s.NotNil(deck, "Deck should not be nil")
	s.Len(deck.Cards, 52, "Deck should have 52 cards")

	// Verify all suits and ranks are present
	suitCounts := map[Suit]int{}
	rankCounts := map[Rank]int{}
	for _, card := range deck.Cards {
		suitCounts[card.Suit]++
		rankCounts[card.Rank]++
	}

	for _, suit := range suits {
		s.Equal(13, suitCounts[suit], "Each suit should have 13 cards: %s", suit)
	}
	for _, rank := range ranks {
		s.Equal(4, rankCounts[rank], "Each rank should have 4 cards: %s", rank)
	}

	// Every card must carry the value its rank dictates
	for _, card := range deck.Cards {
		s.Equal(rankValues[card.Rank], card.Value)
	}
}

func (s *DeckTestSuite) TestShuffle() {
	// Setup
	deck1 := NewDeck()
	deck2 := NewDeck()

	// Execute
	deck1.Shuffle()

	// Assert
	cardsMatch := true
	for i := range deck1.Cards {
		if deck1.Cards[i] != deck2.Cards[i] {
			cardsMatch = false
			break
		}
	}
	s.False(cardsMatch, "Shuffled deck should be in different order than original")

	// Verify no cards were lost or duplicated
	s.Len(deck1.Cards, 52, "Shuffled deck should still have 52 cards")
	cardCounts := make(map[Card]int)
	for _, card := range deck1.Cards {
		cardCounts[card]++
	}
	for card, count := range cardCounts {
		s.Equal(1, count, "Card %v should appear exactly once", card)
	}
}

func (s *DeckTestSuite) TestDeal() {
	testCases := []struct {
		name           string
		dealCount      int
		expectedRemain int
		wantErr        bool
	}{
		{
			name:           "deal zero cards",
			dealCount:      0,
			expectedRemain: 52,
		},
		{
			name:           "deal a hand",
			dealCount:      4,
			expectedRemain: 48,
		},
		{
			name:           "deal the whole deck",
			dealCount:      52,
			expectedRemain: 0,
		},
		{
			name:      "deal more than deck size",
			dealCount: 53,
			wantErr:   true,
		},
		{
			name:      "deal a negative count",
			dealCount: -1,
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			deck := NewDeck()

			// Execute
			dealt, err := deck.Deal(tc.dealCount)

			// Assert
			if tc.wantErr {
				s.ErrorIs(err, ErrNotEnoughCards)
				s.Len(deck.Cards, 52, "A failed deal should leave the deck untouched")
				return
			}
			s.NoError(err)
			s.Len(dealt, tc.dealCount, "Should deal expected number of cards")
			s.Len(deck.Cards, tc.expectedRemain, "Deck should have expected number of remaining cards")
		})
	}
}

func (s *DeckTestSuite) TestDealFromTop() {
	// Setup
	deck := NewDeck()
	top := deck.Cards[:4]
	expected := make([]Card, 4)
	copy(expected, top)

	// Execute
	dealt, err := deck.Deal(4)

	// Assert
	s.NoError(err)
	s.Equal(expected, dealt, "Deal should return the top cards in order")
}

func (s *DeckTestSuite) TestRandomSuit() {
	valid := map[Suit]bool{Hearts: true, Clubs: true, Diamonds: true, Spades: true}

	for i := 0; i < 100; i++ {
		s.True(valid[RandomSuit()], "RandomSuit should only produce recognized suits")
	}
}
