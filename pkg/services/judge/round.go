package judge

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/veinticuatro/pkg/entities"
	"github.com/fadedpez/veinticuatro/pkg/services/solver"
)

// ErrInvalidHandSize is returned when a round is requested with no cards.
var ErrInvalidHandSize = errors.New("hand size must be at least 1")

// Dealer supplies the cards for a round.
type Dealer interface {
	Deal(n int) ([]entities.Card, error)
}

// Ensure Deck implements the Dealer interface
var _ Dealer = (*entities.Deck)(nil)

// Round represents one dealt hand waiting to be claimed and judged.
type Round struct {
	ID      string
	Hand    []entities.Card
	Target  int
	DealtAt time.Time
}

// NewRound deals a fresh hand of handSize cards and fixes the target it must
// reach.
func NewRound(dealer Dealer, handSize, target int) (*Round, error) {
	if dealer == nil {
		panic("dealer cannot be nil")
	}
	if handSize < 1 {
		return nil, fmt.Errorf("%d: %w", handSize, ErrInvalidHandSize)
	}

	hand, err := dealer.Deal(handSize)
	if err != nil {
		return nil, fmt.Errorf("failed to deal round: %w", err)
	}

	return &Round{
		ID:      uuid.New().String(),
		Hand:    hand,
		Target:  target,
		DealtAt: time.Now(),
	}, nil
}

// Solutions returns every distinct way the round's hand reaches its target.
func (r *Round) Solutions() solver.SolutionSet {
	return solver.Solve(r.Hand, r.Target)
}
