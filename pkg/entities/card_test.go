package entities

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestNewCardValues() {
	testCases := []struct {
		rank     Rank
		expected int
	}{
		{Ace, 1},
		{Two, 2},
		{Three, 3},
		{Four, 4},
		{Five, 5},
		{Six, 6},
		{Seven, 7},
		{Eight, 8},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tc := range testCases {
		s.Run(string(tc.rank), func() {
			// Execute
			card, err := NewCard(tc.rank, Spades)

			// Assert
			s.NoError(err)
			s.Equal(tc.rank, card.Rank)
			s.Equal(Spades, card.Suit)
			s.Equal(tc.expected, card.Value, "Card value should follow the rank table")
		})
	}
}

func (s *CardTestSuite) TestNewCardInvalid() {
	testCases := []struct {
		name     string
		rank     Rank
		suit     Suit
		expected error
	}{
		{
			name:     "unknown rank",
			rank:     Rank("Z"),
			suit:     Hearts,
			expected: ErrInvalidRank,
		},
		{
			name:     "lowercase rank",
			rank:     Rank("k"),
			suit:     Hearts,
			expected: ErrInvalidRank,
		},
		{
			name:     "empty rank",
			rank:     Rank(""),
			suit:     Hearts,
			expected: ErrInvalidRank,
		},
		{
			name:     "unknown suit",
			rank:     King,
			suit:     Suit("x"),
			expected: ErrInvalidSuit,
		},
		{
			name:     "uppercase suit",
			rank:     King,
			suit:     Suit("H"),
			expected: ErrInvalidSuit,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Execute
			_, err := NewCard(tc.rank, tc.suit)

			// Assert
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *CardTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		rank     Rank
		suit     Suit
		expected string
	}{
		{
			name:     "eight of hearts",
			rank:     Eight,
			suit:     Hearts,
			expected: "8h",
		},
		{
			name:     "ten of diamonds",
			rank:     Ten,
			suit:     Diamonds,
			expected: "10d",
		},
		{
			name:     "king of clubs",
			rank:     King,
			suit:     Clubs,
			expected: "Kc",
		},
		{
			name:     "ace of spades",
			rank:     Ace,
			suit:     Spades,
			expected: "As",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			card, err := NewCard(tc.rank, tc.suit)
			s.Require().NoError(err)

			// Execute
			result := card.String()

			// Assert
			s.Equal(tc.expected, result, "Card string representation should match expected")
		})
	}
}

func (s *CardTestSuite) TestCardIdentity() {
	eightOfHearts, err := NewCard(Eight, Hearts)
	s.Require().NoError(err)
	eightOfSpades, err := NewCard(Eight, Spades)
	s.Require().NoError(err)
	sameEight, err := NewCard(Eight, Hearts)
	s.Require().NoError(err)

	// Identity is (rank, suit); same rank in a different suit is a
	// distinct card
	s.Equal(eightOfHearts, sameEight)
	s.NotEqual(eightOfHearts, eightOfSpades)

	// Cards are comparable and usable as map keys
	seen := map[Card]int{}
	seen[eightOfHearts]++
	seen[sameEight]++
	seen[eightOfSpades]++
	s.Len(seen, 2)
	s.Equal(2, seen[eightOfHearts])
}

func (s *CardTestSuite) TestParseRank() {
	testCases := []struct {
		name     string
		input    string
		expected Rank
		wantErr  bool
	}{
		{
			name:     "uppercase face card",
			input:    "K",
			expected: King,
		},
		{
			name:     "lowercase normalizes",
			input:    "q",
			expected: Queen,
		},
		{
			name:     "ten is two characters",
			input:    "10",
			expected: Ten,
		},
		{
			name:    "unknown token",
			input:   "11",
			wantErr: true,
		},
		{
			name:    "empty token",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Execute
			rank, err := ParseRank(tc.input)

			// Assert
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidRank)
				return
			}
			s.NoError(err)
			s.Equal(tc.expected, rank)
		})
	}
}
